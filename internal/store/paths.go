package store

import "fmt"

// Collection and document path helpers. Per-user data lives under the user
// document, group data under the group document, mirroring the layout the
// mobile clients sync against.

const GroupsCollection = "groups"

func UserPath(userID string) string {
	return fmt.Sprintf("users/%s", userID)
}

func UserTemplatesCollection(userID string) string {
	return fmt.Sprintf("users/%s/templates", userID)
}

func TemplatePath(userID, templateID string) string {
	return fmt.Sprintf("users/%s/templates/%s", userID, templateID)
}

func UserWorkoutsCollection(userID string) string {
	return fmt.Sprintf("users/%s/workouts", userID)
}

func WorkoutPath(userID, workoutID string) string {
	return fmt.Sprintf("users/%s/workouts/%s", userID, workoutID)
}

func UserExercisesCollection(userID string) string {
	return fmt.Sprintf("users/%s/exercises", userID)
}

func ExercisePath(userID, exerciseKey string) string {
	return fmt.Sprintf("users/%s/exercises/%s", userID, exerciseKey)
}

func ExerciseHistoryCollection(userID, exerciseKey string) string {
	return fmt.Sprintf("users/%s/exercises/%s/history", userID, exerciseKey)
}

func ExerciseSetPath(userID, exerciseKey, setID string) string {
	return fmt.Sprintf("users/%s/exercises/%s/history/%s", userID, exerciseKey, setID)
}

func UserFoodsCollection(userID string) string {
	return fmt.Sprintf("users/%s/foods", userID)
}

func UserMembershipsCollection(userID string) string {
	return fmt.Sprintf("users/%s/memberships", userID)
}

func MembershipPath(userID, groupID string) string {
	return fmt.Sprintf("users/%s/memberships/%s", userID, groupID)
}

func GroupPath(groupID string) string {
	return fmt.Sprintf("groups/%s", groupID)
}

func GroupMembersCollection(groupID string) string {
	return fmt.Sprintf("groups/%s/members", groupID)
}

func GroupMemberPath(groupID, userID string) string {
	return fmt.Sprintf("groups/%s/members/%s", groupID, userID)
}

func GroupTemplatesCollection(groupID string) string {
	return fmt.Sprintf("groups/%s/templates", groupID)
}

func GroupWorkoutsCollection(groupID string) string {
	return fmt.Sprintf("groups/%s/workouts", groupID)
}

func GroupWorkoutPath(groupID, workoutID string) string {
	return fmt.Sprintf("groups/%s/workouts/%s", groupID, workoutID)
}
