package ports

import "context"

// TemplatePort writes blank feeder-assignment templates.
type TemplatePort interface {
	Write(ctx context.Context, path string, keys []string) error
}
