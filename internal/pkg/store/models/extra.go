package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// marshalWithExtra encodes v and adds the extra members it does not already carry.
func marshalWithExtra(v interface{}, extra bson.M) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return body, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, declared := doc[key]; declared {
			continue
		}
		raw, err := json.Marshal(plainValue(value))
		if err != nil {
			return nil, err
		}
		doc[key] = raw
	}
	return json.Marshal(doc)
}

// plainValue turns the driver's decoded document and array types into maps and slices.
func plainValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.D:
		out := make(map[string]interface{}, len(val))
		for _, e := range val {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case primitive.M:
		out := make(map[string]interface{}, len(val))
		for k, e := range val {
			out[k] = plainValue(e)
		}
		return out
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}
