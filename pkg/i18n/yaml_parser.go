package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a translation document whose top-level keys are language
// codes:
//
//	en:
//	  validation:
//	    required: "field is required"
//	pt-BR:
//	  validation:
//	    required: "campo obrigatório"
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, errors.Join(ErrFailedToParseYAML,
				fmt.Errorf("language %q: expected map, got %T", lang, val))
		}
		result[lang] = m
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
