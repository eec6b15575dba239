package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/tracing"
)

var ErrEmptyTemplateTitle = errors.New("template title is empty")

// RecentTemplatesLimit bounds the initial template load.
const RecentTemplatesLimit = 20

//go:generate mockgen -source=$GOFILE -destination=templates_mocks_test.go -package=workouts_test

type templatesStore interface {
	Set(ctx context.Context, path string, data store.Document, merge bool) error
	Query(ctx context.Context, q store.Query) ([]store.Snapshot, error)
	Batch(ctx context.Context, writes []store.Write) error
}

// TemplateService persists workout templates. The template title is the
// natural key: saving a template whose title matches an existing one
// overwrites that document (upsert, last write wins).
type TemplateService struct {
	store templatesStore

	// injectable for testing
	Now func() time.Time
}

func NewTemplateService(store templatesStore) *TemplateService {
	return &TemplateService{
		store: store,
		Now:   time.Now,
	}
}

func (s *TemplateService) Save(ctx context.Context, userID string, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.templates.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if template.Title == "" {
		return nil, ErrEmptyTemplateTitle
	}

	template.ID = StorageKey(template.Title)
	template.EditedAt = s.Now()

	if err := s.store.Set(
		ctx,
		store.TemplatePath(userID, template.ID),
		template.Document(),
		false,
	); err != nil {
		return nil, fmt.Errorf("save template [%s]: %w", template.Title, err)
	}

	return &template, nil
}

// Recent returns the user's templates, most recently edited first.
func (s *TemplateService) Recent(ctx context.Context, userID string, limit int) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.templates.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 {
		limit = RecentTemplatesLimit
	}

	snapshots, err := s.store.Query(ctx, store.Query{
		Collection: store.UserTemplatesCollection(userID),
		OrderBy:    "editedAt",
		Desc:       true,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	templates := make([]Template, 0, len(snapshots))
	for _, snap := range snapshots {
		templates = append(templates, DecodeTemplate(snap.ID, snap.Data))
	}
	return templates, nil
}

func (s *TemplateService) Delete(ctx context.Context, userID, templateID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.store.Batch(ctx, []store.Write{
		{Path: store.TemplatePath(userID, templateID), Delete: true},
	})
}
