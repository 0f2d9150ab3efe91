package api

import (
	"bytes"
	"encoding/json"
)

const imagesKey = "images"

// backfillImages rewrites body so that every object whose "images" field is
// null or an empty array gets []string{defaultImage}. Bodies without such
// fields are returned untouched.
func backfillImages(body []byte, defaultImage string) ([]byte, error) {
	if defaultImage == "" || !bytes.Contains(body, []byte(`"`+imagesKey+`"`)) {
		return body, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	if !fillImages(doc, defaultImage) {
		return body, nil
	}
	return json.Marshal(doc)
}

func fillImages(v any, defaultImage string) bool {
	changed := false
	switch node := v.(type) {
	case map[string]any:
		for key, child := range node {
			if key == imagesKey && isEmptyList(child) {
				node[key] = []any{defaultImage}
				changed = true
				continue
			}
			if fillImages(child, defaultImage) {
				changed = true
			}
		}
	case []any:
		for _, child := range node {
			if fillImages(child, defaultImage) {
				changed = true
			}
		}
	}
	return changed
}

func isEmptyList(v any) bool {
	if v == nil {
		return true
	}
	list, ok := v.([]any)
	return ok && len(list) == 0
}
