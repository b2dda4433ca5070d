// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor drives the admin editing workflow. A FormSpec describes
// the editable fields of one entity kind; Parse validates a submission
// against it before anything reaches a store. The State manager tracks
// which row each session is editing so the UI can enforce one open
// editor at a time.
package editor

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// FieldKind selects the input control and the parsing rule for a field.
type FieldKind string

const (
	KindText      FieldKind = "text"
	KindMultiline FieldKind = "multiline"
	KindNumber    FieldKind = "number"
	KindColor     FieldKind = "color"   // hex string like #617E1D
	KindBool      FieldKind = "bool"
	KindSelect    FieldKind = "select"  // one of Options
	KindList      FieldKind = "list"    // repeated string values
	KindPairList  FieldKind = "pairs"   // parallel <name>.title / <name>.description values
)

// Pair is one titled entry parsed from a KindPairList field.
type Pair struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FieldSpec describes one editable field. The JSON shape is what the
// admin UI receives to render the form.
type FieldSpec struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	MaxLen   int       `json:"max_len,omitempty"` // 0 means no limit
	Min      int       `json:"min,omitempty"`     // bounds for KindNumber;
	Max      int       `json:"max,omitempty"`     // both zero means unbounded
	Options  []string  `json:"options,omitempty"` // allowed values for KindSelect
	Fallback string    `json:"-"`                 // substituted for invalid KindSelect values instead of erroring
}

// FormSpec is the full field list for one entity kind.
type FormSpec struct {
	Entity string      `json:"entity"`
	Fields []FieldSpec `json:"fields"`
}

// ValidationError collects per-field messages for a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for name, msg := range e.Fields {
		parts = append(parts, name+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

// Parse validates submitted form values against the spec and returns the
// typed field values. Field types in the result map: string for text,
// multiline, color and select; int for number; bool for bool; []string
// for list; []Pair for pairs. On any violation it returns a
// ValidationError and no partial result, so nothing invalid can reach a
// store.
func (f *FormSpec) Parse(values url.Values) (map[string]any, *ValidationError) {
	out := make(map[string]any, len(f.Fields))
	verr := &ValidationError{}

	for _, field := range f.Fields {
		switch field.Kind {
		case KindText, KindMultiline, KindColor:
			v := strings.TrimSpace(values.Get(field.Name))
			if field.Required && v == "" {
				verr.add(field.Name, "required")
				continue
			}
			if field.MaxLen > 0 && len(v) > field.MaxLen {
				verr.add(field.Name, fmt.Sprintf("longer than %d characters", field.MaxLen))
				continue
			}
			if field.Kind == KindColor && v != "" && !validHexColor(v) {
				verr.add(field.Name, "not a hex color")
				continue
			}
			out[field.Name] = v

		case KindNumber:
			raw := strings.TrimSpace(values.Get(field.Name))
			if raw == "" {
				if field.Required {
					verr.add(field.Name, "required")
					continue
				}
				out[field.Name] = 0
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				verr.add(field.Name, "not a number")
				continue
			}
			if (field.Min != 0 || field.Max != 0) && (n < field.Min || n > field.Max) {
				verr.add(field.Name, fmt.Sprintf("must be between %d and %d", field.Min, field.Max))
				continue
			}
			out[field.Name] = n

		case KindBool:
			v := values.Get(field.Name)
			out[field.Name] = v == "true" || v == "on" || v == "1"

		case KindSelect:
			v := strings.TrimSpace(values.Get(field.Name))
			if !contains(field.Options, v) {
				if field.Fallback != "" {
					v = field.Fallback
				} else if field.Required || v != "" {
					verr.add(field.Name, "not a valid choice")
					continue
				}
			}
			out[field.Name] = v

		case KindList:
			var list []string
			for _, v := range values[field.Name] {
				if v = strings.TrimSpace(v); v != "" {
					list = append(list, v)
				}
			}
			if field.Required && len(list) == 0 {
				verr.add(field.Name, "at least one entry required")
				continue
			}
			out[field.Name] = list

		case KindPairList:
			titles := values[field.Name+".title"]
			descriptions := values[field.Name+".description"]
			var pairs []Pair
			for i, title := range titles {
				title = strings.TrimSpace(title)
				desc := ""
				if i < len(descriptions) {
					desc = strings.TrimSpace(descriptions[i])
				}
				if title == "" && desc == "" {
					continue
				}
				if title == "" {
					verr.add(field.Name, "entry missing a title")
					break
				}
				pairs = append(pairs, Pair{Title: title, Description: desc})
			}
			if _, bad := verr.Fields[field.Name]; bad {
				continue
			}
			out[field.Name] = pairs
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return out, nil
}

// AppendItem adds a value to a list field.
func AppendItem[T any](list []T, v T) []T {
	return append(list, v)
}

// RemoveAt deletes the entry at index i. An out-of-range index leaves
// the list unchanged, so a stale button press cannot corrupt the form.
func RemoveAt[T any](list []T, i int) []T {
	if i < 0 || i >= len(list) {
		return list
	}
	return append(list[:i:i], list[i+1:]...)
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func validHexColor(v string) bool {
	if len(v) != 7 || v[0] != '#' {
		return false
	}
	for _, c := range v[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
