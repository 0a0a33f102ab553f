package handlers

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson"
)

// bindJSONWithExtra validates the body into req and returns the members that neither
// req nor the stored document declares. Operator and dotted keys are dropped.
func bindJSONWithExtra(c *gin.Context, req interface{}, stored interface{}) (bson.M, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	declared := fieldNames(reflect.TypeOf(req), "json")
	for name := range fieldNames(reflect.TypeOf(stored), "bson") {
		declared[name] = struct{}{}
	}

	var extra bson.M
	for key, value := range raw {
		if key == "" || strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
			continue
		}
		if _, ok := declared[key]; ok {
			continue
		}
		if extra == nil {
			extra = bson.M{}
		}
		extra[key] = normalizeNumbers(value)
	}
	return extra, nil
}

func fieldNames(t reflect.Type, tagKey string) map[string]struct{} {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get(tagKey), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		names[name] = struct{}{}
	}
	return names
}

// normalizeNumbers stores whole numbers as int64 and the rest as float64.
func normalizeNumbers(v interface{}) interface{} {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		f, _ := val.Float64()
		return f
	case map[string]interface{}:
		out := bson.M{}
		for k, e := range val {
			out[k] = normalizeNumbers(e)
		}
		return out
	case []interface{}:
		out := make(bson.A, len(val))
		for i, e := range val {
			out[i] = normalizeNumbers(e)
		}
		return out
	default:
		return v
	}
}
