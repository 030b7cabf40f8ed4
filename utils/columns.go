package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the list of "db" tagged column names of a db model
// struct, optionally prefixed with a table alias.
func ColumnList[T any](prefixes ...string) []string {
	var value T
	modelType := reflect.TypeOf(value)
	columns := make([]string, 0, modelType.NumField())

	for i := 0; i < modelType.NumField(); i++ {
		tag, ok := modelType.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		column := tag
		for _, prefix := range prefixes {
			column = fmt.Sprintf("%s.%s", prefix, column)
		}
		columns = append(columns, column)
	}
	return columns
}
