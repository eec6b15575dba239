package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/2beens/fitsync/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyFoodName = errors.New("food name is empty")
	ErrEmptyBarcode  = errors.New("barcode is empty")
	ErrFoodNotFound  = errors.New("food not found")
)

const (
	oneHour          = 60 * 60
	foodCacheExpire  = oneHour * 24 // food data barely changes
	searchCacheLimit = 25
)

// API is the client for the external nutrition lookup service. Results are
// cached; the upstream data is untrusted and partially missing, so absent
// macros simply decode to zero.
type API struct {
	cache      *freecache.Cache
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type searchResponse struct {
	Foods []FoodRecord `json:"foods"`
}

type barcodeResponse struct {
	Food *FoodRecord `json:"food"`
}

func NewAPI(baseURL, apiKey string, httpClient *http.Client) *API {
	megabyte := 1024 * 1024
	cacheSize := 20 * megabyte
	return &API{
		cache:      freecache.NewCache(cacheSize),
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// SearchByName looks up foods matching the given text.
func (api *API) SearchByName(ctx context.Context, text string) (_ []FoodRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.searchByName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyFoodName
	}

	cacheKey := fmt.Sprintf("search::%s", strings.ToLower(text))
	if cached, err := api.cache.Get([]byte(cacheKey)); err == nil {
		var response searchResponse
		if err := json.Unmarshal(cached, &response); err == nil {
			log.Tracef("found food search results for %q in cache", text)
			return response.Foods, nil
		}
		log.Errorf("failed to unmarshal cached food search for %q: %s", text, err)
	}

	searchURL := fmt.Sprintf(
		"%s/foods/search?query=%s&limit=%d&apiKey=%s",
		api.baseURL, url.QueryEscape(text), searchCacheLimit, api.apiKey,
	)
	respBytes, err := api.call(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err := json.Unmarshal(respBytes, &response); err != nil {
		return nil, fmt.Errorf("unmarshal food search response: %w", err)
	}

	if err := api.cache.Set([]byte(cacheKey), respBytes, foodCacheExpire); err != nil {
		log.Errorf("failed to cache food search for %q: %s", text, err)
	}

	return response.Foods, nil
}

// LookupByBarcode resolves a scanned barcode to a single food record.
func (api *API) LookupByBarcode(ctx context.Context, code string) (_ *FoodRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.lookupByBarcode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyBarcode
	}

	cacheKey := fmt.Sprintf("barcode::%s", code)
	if cached, err := api.cache.Get([]byte(cacheKey)); err == nil {
		var response barcodeResponse
		if err := json.Unmarshal(cached, &response); err == nil && response.Food != nil {
			log.Tracef("found barcode %s in cache", code)
			return response.Food, nil
		}
	}

	lookupURL := fmt.Sprintf(
		"%s/foods/barcode/%s?apiKey=%s",
		api.baseURL, url.PathEscape(code), api.apiKey,
	)
	respBytes, err := api.call(ctx, lookupURL)
	if err != nil {
		return nil, err
	}

	var response barcodeResponse
	if err := json.Unmarshal(respBytes, &response); err != nil {
		return nil, fmt.Errorf("unmarshal barcode response: %w", err)
	}
	if response.Food == nil {
		return nil, ErrFoodNotFound
	}

	if err := api.cache.Set([]byte(cacheKey), respBytes, foodCacheExpire); err != nil {
		log.Errorf("failed to cache barcode %s: %s", code, err)
	}

	return response.Food, nil
}

func (api *API) call(ctx context.Context, callURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", callURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition api status: %s", resp.Status)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read nutrition api response: %w", err)
	}
	return respBytes, nil
}
