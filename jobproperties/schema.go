package jobproperties

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v2"
)

const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "type": "object",
  "properties": {
    "rabbitmq-server": {
      "type": "object",
      "properties": {
        "ips": {"type": ["array", "null"], "items": {"type": "string"}},
        "use_native_clustering_formation": {"type": "boolean"},
        "cluster_partition_handling": {"type": "string", "pattern": "^[^']*$"},
        "disk_alarm_threshold": {"type": ["string", "number"], "pattern": "^[^']*$"},
        "ssl": {
          "type": ["object", "null"],
          "properties": {
            "key": {"type": "string"},
            "cert": {"type": "string"},
            "cacert": {"type": "string"},
            "security_options": {"type": "array", "items": {"type": "string"}},
            "verify": {"type": "boolean"},
            "verification_depth": {"type": "integer", "minimum": 0},
            "fail_if_no_peer_cert": {"type": "boolean"}
          }
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(manifestSchema)

// ParseManifest validates a property bag as decoded by yaml.v2 and converts
// it into a Manifest.
func ParseManifest(raw interface{}) (Manifest, error) {
	if err := ValidateManifest(raw); err != nil {
		return Manifest{}, err
	}

	if raw == nil {
		return Manifest{}, nil
	}

	contents, err := yaml.Marshal(raw)
	if err != nil {
		return Manifest{}, errors.Wrap(err, "error marshalling manifest properties")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(contents, &manifest); err != nil {
		return Manifest{}, errors.Wrap(err, "error unmarshalling manifest properties")
	}
	return manifest, nil
}

func ValidateManifest(raw interface{}) error {
	normalized, err := normalize(raw)
	if err != nil {
		return err
	}
	if normalized == nil {
		normalized = map[string]interface{}{}
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(normalized))
	if err != nil {
		return errors.Wrap(err, "error occurred when attempting to validate manifest properties")
	}

	if !result.Valid() {
		return fmt.Errorf("manifest properties failed validation:\n%s", errorFormatter(result.Errors()))
	}

	return nil
}

// normalize turns the map[interface{}]interface{} values produced by yaml.v2
// into string keyed maps so they can be encoded as JSON.
func normalize(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, val := range v {
			strKey, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("manifest property key %v is not a string", key)
			}
			normalizedVal, err := normalize(val)
			if err != nil {
				return nil, err
			}
			m[strKey] = normalizedVal
		}
		return m, nil
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, val := range v {
			normalizedVal, err := normalize(val)
			if err != nil {
				return nil, err
			}
			m[key] = normalizedVal
		}
		return m, nil
	case []interface{}:
		s := make([]interface{}, len(v))
		for i, val := range v {
			normalizedVal, err := normalize(val)
			if err != nil {
				return nil, err
			}
			s[i] = normalizedVal
		}
		return s, nil
	default:
		return v, nil
	}
}

func errorFormatter(errs []gojsonschema.ResultError) string {
	stringErrs := []string{}
	for _, err := range errs {
		stringErrs = append(stringErrs, err.String())
	}

	return strings.Join(stringErrs, "; ")
}
