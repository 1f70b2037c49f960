package services

import (
	"context"
	"fmt"

	"github.com/newnancity/nanmanager/pkg/transport"
)

// Requester sends API calls. *transport.Client implements it.
type Requester interface {
	Get(ctx context.Context, path string, query, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

var _ Requester = (*transport.Client)(nil)

const apiPrefix = "/api/v1"

// PageOptions selects a page of a list endpoint. Nil fields use the server's
// defaults.
type PageOptions struct {
	Page     *int `query:"page"`
	PageSize *int `query:"page_size"`
}

// NewPageOptions returns PageOptions for the given page and page size.
func NewPageOptions(page, pageSize int) PageOptions {
	return PageOptions{Page: &page, PageSize: &pageSize}
}

// resourcePath formats a path under the API prefix. format must be a
// constant; list helpers taking a path variable join it with apiPrefix.
func resourcePath(format string, args ...any) string {
	return apiPrefix + fmt.Sprintf(format, args...)
}
