package transforms

import (
	"reflect"
)

type TransformDefinition struct {
	Match map[string]string
	Data  map[string]interface{}
}

func (t *TransformDefinition) transform(value reflect.Value) {
	for key, match := range t.Match {
		field := value.FieldByName(key)

		if !field.IsValid() || field.Kind() != reflect.String || field.String() != match {
			return
		}
	}

	for key, data := range t.Data {
		field := value.FieldByName(key)

		if field.IsValid() && field.CanSet() {
			field.Set(reflect.ValueOf(data))
		}
	}
}

// Transform applies every registered definition to the input and anything
// nested inside it. Input must be a pointer for the overrides to stick
func Transform(input interface{}) {
	apply(reflect.ValueOf(input))
}

func apply(value reflect.Value) {
	switch value.Kind() {
	case reflect.Pointer:
		if !value.IsNil() {
			apply(value.Elem())
		}
	case reflect.Slice:
		for i := 0; i < value.Len(); i++ {
			apply(value.Index(i))
		}
	case reflect.Struct:
		for _, transformDef := range transforms {
			transformDef.transform(value)
		}

		for i := 0; i < value.NumField(); i++ {
			apply(value.Field(i))
		}
	}
}
