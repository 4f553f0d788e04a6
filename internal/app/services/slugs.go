package services

import (
	"strings"

	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/apperrors"
	"github.com/rushiiaher/CivilPath-sub000/internal/pkg/helpers"
)

// requireName trims name and rejects an empty result
func requireName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError("%s is required", field)
	}
	return name, nil
}

// slugOrDefault slugifies slug, falling back to the slugified name
func slugOrDefault(slug, name string) (string, error) {
	if strings.TrimSpace(slug) == "" {
		slug = name
	}
	out := helpers.Slugify(slug)
	if out == "" {
		return "", apperrors.NewValidationError("slug must contain at least one letter or digit")
	}
	return out, nil
}

// normalizeUpdate trims "name"/"title" and slugifies "slug" in an update field set
func normalizeUpdate(fields map[string]interface{}) error {
	for _, column := range []string{"name", "title"} {
		if v, ok := fields[column].(string); ok {
			trimmed, err := requireName(column, v)
			if err != nil {
				return err
			}
			fields[column] = trimmed
		}
	}
	if v, ok := fields["slug"].(string); ok {
		slug := helpers.Slugify(v)
		if slug == "" {
			return apperrors.NewValidationError("slug must contain at least one letter or digit")
		}
		fields["slug"] = slug
	}
	return nil
}

func validID(field string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid %s", field)
	}
	return nil
}
