// Package model holds the LightBnB entities that mirror the SQL tables,
// the read models returned by the repository layer, and the request
// payloads validated by the handler layer.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by the name the client sent (json, query or
// path tag) rather than the Go field name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// Empty is the payload for endpoints that take no input.
type Empty struct{}

func (Empty) Validate() error { return nil }
