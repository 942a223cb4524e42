package client

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hireplan/hireplan/internal/types"
)

// maxPreflightConcurrency bounds parallel reference lookups.
const maxPreflightConcurrency = 4

// MissingReference identifies a posting field whose remote reference does
// not exist, keyed the same way validation errors are.
type MissingReference struct {
	Path string `json:"path"`
	ID   string `json:"id"`
}

// reference pairs a posting field with the endpoint that resolves it.
type reference struct {
	path     string
	id       string
	endpoint string
}

// VerifyReferences resolves the posting's external references (the
// availability template, lifecycle email templates, and job-rule templates)
// against the reference APIs and reports the ones that do not exist. It is
// an optional preflight: the remote API re-checks all references at
// submission time regardless.
//
// Lookups run concurrently; the first transport error cancels the rest.
func (c *Client) VerifyReferences(ctx context.Context, posting *types.JobPosting) ([]MissingReference, error) {
	if posting == nil {
		return nil, &Error{URL: c.baseURL, Message: "posting is required"}
	}

	refs := collectReferences(posting)
	if len(refs) == 0 {
		return nil, nil
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxPreflightConcurrency)

	var mu sync.Mutex
	var missing []MissingReference

	for _, ref := range refs {
		ref := ref
		group.Go(func() error {
			exists, err := c.referenceExists(ctx, ref.endpoint)
			if err != nil {
				return err
			}
			if !exists {
				mu.Lock()
				missing = append(missing, MissingReference{Path: ref.path, ID: ref.id})
				mu.Unlock()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i].Path < missing[j].Path })
	return missing, nil
}

// collectReferences gathers every externally managed ID on the posting.
func collectReferences(posting *types.JobPosting) []reference {
	var refs []reference

	if posting.AvailabilityID != "" {
		refs = append(refs, reference{
			path:     "availabilityId",
			id:       posting.AvailabilityID,
			endpoint: "/availabilities/" + url.PathEscape(posting.AvailabilityID),
		})
	}

	templateRefs := posting.TemplateRefs()
	for _, path := range sortedRefPaths(templateRefs) {
		id := templateRefs[path]
		refs = append(refs, reference{
			path:     path,
			id:       id,
			endpoint: "/email-templates/" + url.PathEscape(id),
		})
	}

	if posting.Automation.TemplateID != "" {
		refs = append(refs, reference{
			path:     "automation.templateId",
			id:       posting.Automation.TemplateID,
			endpoint: "/email-templates/" + url.PathEscape(posting.Automation.TemplateID),
		})
	}
	for i, rule := range posting.Automation.JobRules {
		if rule.Action == types.ActionSendTemplate && rule.Template != "" {
			refs = append(refs, reference{
				path:     indexedRulePath(i),
				id:       rule.Template,
				endpoint: "/email-templates/" + url.PathEscape(rule.Template),
			})
		}
	}

	return refs
}

// referenceExists performs a single existence lookup. 404 means the
// reference is missing; any other error status is a real failure.
func (c *Client) referenceExists(ctx context.Context, endpoint string) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	_ = resp.Body.Close()
	return true, nil
}

func sortedRefPaths(refs map[string]string) []string {
	paths := make([]string, 0, len(refs))
	for path := range refs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func indexedRulePath(index int) string {
	return "automation.jobRules[" + strconv.Itoa(index) + "].template"
}
