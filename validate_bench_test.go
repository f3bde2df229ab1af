package rx_test

import (
	"testing"

	rx "github.com/codesimply/rx"
	rxjson "github.com/codesimply/rx/source/json"
)

func rxDecode(src string) (rx.Value, error) {
	return rxjson.DecodeValue([]byte(src))
}

func BenchmarkValidate_Record(b *testing.B) {
	reg := rx.NewRegistry()
	doc, err := rxDecode(`{
		"type": "record",
		"required": {
			"name":  {"type": "scalar-string"},
			"count": {"type": "scalar-number", "range": {"min": 0}},
			"tags":  {"type": "array", "contents": {"type": "scalar-string"}}
		}
	}`)
	if err != nil {
		b.Fatal(err)
	}
	schema, err := rx.Compile(doc, reg)
	if err != nil {
		b.Fatal(err)
	}
	data, err := rxDecode(`{"name":"Donner","count":8,"tags":["sleigh","lead"]}`)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if res := schema.Validate(data); !res.Valid {
			b.Fatalf("unexpected failures: %v", res.Failures)
		}
	}
}
