package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
)

// actionIndex is special: it is the only operation whose URL carries no
// action segment.
const (
	actionIndex  = "index"
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

type resourceClient struct {
	parent     *Client
	descriptor *alfacrm.Descriptor
}

// Descriptor returns the resource's registration.
func (r *resourceClient) Descriptor() *alfacrm.Descriptor {
	return r.descriptor
}

// path builds the endpoint path for an action. Branch-scoped resources fail
// with MissingBranchError when no branch is selected.
func (r *resourceClient) path(action string) (string, error) {
	segments := []string{"", "v2api"}

	if r.descriptor.BranchRequired {
		branch := r.parent.Branch()
		if branch == 0 {
			return "", &alfacrm.MissingBranchError{Resource: r.descriptor.Name}
		}

		segments = append(segments, strconv.Itoa(branch))
	}

	segments = append(segments, r.descriptor.Path...)

	if action != actionIndex {
		segments = append(segments, action)
	}

	return strings.Join(segments, "/"), nil
}

// List fetches matching records. When the validated filter pins an explicit
// page, only that page is requested and the server's totals are passed
// through; otherwise pages are walked from zero until one comes back empty or
// the accumulated count reaches the first page's reported total, and the
// returned total is the merged item count.
func (r *resourceClient) List(ctx context.Context, filter alfacrm.Params) (*alfacrm.ListResult, error) {
	validated, err := r.validate(r.descriptor.Filter, filter)
	if err != nil {
		return nil, err
	}

	path, err := r.path(actionIndex)
	if err != nil {
		return nil, err
	}

	if cached, ok := r.cachedList(ctx, path, validated); ok {
		return cached, nil
	}

	var result *alfacrm.ListResult

	if _, pinned := validated["page"]; pinned {
		page, err := r.fetchPage(ctx, path, validated)
		if err != nil {
			return nil, err
		}

		result = &alfacrm.ListResult{Items: page.Items, Total: page.Total}
	} else {
		result, err = r.fetchAllPages(ctx, path, validated)
		if err != nil {
			return nil, err
		}
	}

	r.storeList(ctx, path, validated, result)

	return result, nil
}

func (r *resourceClient) fetchAllPages(ctx context.Context, path string, filter alfacrm.Params) (*alfacrm.ListResult, error) {
	var (
		items []alfacrm.Record
		total int
	)

	body := make(alfacrm.Params, len(filter)+1)
	for key, value := range filter {
		body[key] = value
	}

	for page := 0; ; page++ {
		body["page"] = page

		fetched, err := r.fetchPage(ctx, path, body)
		if err != nil {
			return nil, err
		}

		items = append(items, fetched.Items...)

		if total == 0 {
			total = fetched.Total
		}

		if len(fetched.Items) == 0 || len(items) >= total {
			break
		}
	}

	return &alfacrm.ListResult{Items: items, Total: len(items)}, nil
}

func (r *resourceClient) fetchPage(ctx context.Context, path string, body alfacrm.Params) (*alfacrm.Page, error) {
	resp, err := r.parent.httpClient.Post(ctx, path, "", body)
	if err != nil {
		return nil, err
	}

	var page alfacrm.Page

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("decoding page: %w", err)
	}

	return &page, nil
}

// Create adds a record.
func (r *resourceClient) Create(ctx context.Context, attributes alfacrm.Params) (alfacrm.Record, error) {
	validated, err := r.validate(r.descriptor.Create, attributes)
	if err != nil {
		return nil, err
	}

	return r.post(ctx, actionCreate, "", validated)
}

// Update modifies the record with the given ID.
func (r *resourceClient) Update(ctx context.Context, id int, attributes alfacrm.Params) (alfacrm.Record, error) {
	validated, err := r.validate(r.descriptor.Update, attributes)
	if err != nil {
		return nil, err
	}

	return r.post(ctx, actionUpdate, "id="+strconv.Itoa(id), validated)
}

// Delete removes the record with the given ID. Extra parameters go into the
// query string after the ID, sorted by name so URLs are reproducible.
func (r *resourceClient) Delete(ctx context.Context, id int, extra alfacrm.Params) (alfacrm.Record, error) {
	query := "id=" + strconv.Itoa(id)

	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		query += "&" + url.QueryEscape(key) + "=" + url.QueryEscape(queryValue(extra[key]))
	}

	return r.post(ctx, actionDelete, query, nil)
}

// Action invokes a custom action segment with a raw body.
func (r *resourceClient) Action(ctx context.Context, action string, body alfacrm.Params) (alfacrm.Record, error) {
	return r.post(ctx, action, "", body)
}

func (r *resourceClient) post(ctx context.Context, action, query string, body alfacrm.Params) (alfacrm.Record, error) {
	path, err := r.path(action)
	if err != nil {
		return nil, err
	}

	resp, err := r.parent.httpClient.Post(ctx, path, query, body)
	if err != nil {
		return nil, err
	}

	record, err := resp.JSON()
	if err != nil {
		return nil, err
	}

	return record, nil
}

// validate applies a schema when one is declared; raw input passes through a
// copy otherwise.
func (r *resourceClient) validate(schema *alfacrm.Schema, input alfacrm.Params) (alfacrm.Params, error) {
	if input == nil {
		input = alfacrm.Params{}
	}

	if schema == nil {
		out := make(alfacrm.Params, len(input))
		for key, value := range input {
			if value != nil {
				out[key] = value
			}
		}

		return out, nil
	}

	return schema.Validate(input)
}

func (r *resourceClient) cachedList(ctx context.Context, path string, filter alfacrm.Params) (*alfacrm.ListResult, bool) {
	if r.parent.cache == nil {
		return nil, false
	}

	entry, err := r.parent.cache.Get(ctx, listCacheKey(path, filter))
	if err != nil {
		return nil, false
	}

	var result alfacrm.ListResult

	err = json.Unmarshal(entry.Data, &result)
	if err != nil {
		return nil, false
	}

	return &result, true
}

func (r *resourceClient) storeList(ctx context.Context, path string, filter alfacrm.Params, result *alfacrm.ListResult) {
	if r.parent.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	_ = r.parent.cache.Set(ctx, listCacheKey(path, filter), &alfacrm.CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(r.parent.cacheTTL),
	})
}

// listCacheKey is deterministic: JSON encoding sorts map keys.
func listCacheKey(path string, filter alfacrm.Params) string {
	encoded, _ := json.Marshal(filter)

	return path + "?" + string(encoded)
}

func queryValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var _ alfacrm.ResourceClient = (*resourceClient)(nil)
