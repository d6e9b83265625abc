package utils

import (
	"reflect"
	"slices"
)

// ColumnTag names the struct tag that maps fields to table columns.
var ColumnTag = "db"

// taggedFields calls fn for every exported field of input carrying a column
// tag. input must be a struct or a pointer to one.
func taggedFields(input any, fn func(column string, value reflect.Value)) {
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		column := field.Tag.Get(ColumnTag)
		if column == "" || column == "-" {
			continue
		}

		fn(column, v.Field(i))
	}
}

// StructTagValues lists the column names of input in field order.
func StructTagValues(input any) []string {
	var columns []string
	taggedFields(input, func(column string, _ reflect.Value) {
		columns = append(columns, column)
	})
	return columns
}

// StructToMap maps column names to field values, leaving out the columns
// named in exclude.
func StructToMap(input any, exclude ...string) map[string]any {
	result := make(map[string]any)
	taggedFields(input, func(column string, value reflect.Value) {
		if slices.Contains(exclude, column) {
			return
		}
		result[column] = value.Interface()
	})
	return result
}
