package gocrc

import (
	"bytes"
	"testing"

	"github.com/golang/snappy"
)

func TestSnappyCompressor(t *testing.T) {
	c := SnappyCompressor{}
	if c.Name() != "snappy" {
		t.Fatalf("expected name to be 'snappy', got %v", c.Name())
	}

	str := "My Test String"
	expected := snappy.Encode(nil, []byte(str))
	res, err := c.Encode([]byte(str))
	if err != nil {
		t.Fatalf("failed to encode '%v' with error %v", str, err)
	}
	if !bytes.Equal(expected, res) {
		t.Fatal("failed to match the expected encoded value with the result encoded value.")
	}

	decoded, err := c.Decode(res)
	if err != nil {
		t.Fatalf("failed to decode '%v' with error %v", res, err)
	}
	if !bytes.Equal([]byte(str), decoded) {
		t.Fatal("failed to match the expected decoded value with the result decoded value.")
	}
}
