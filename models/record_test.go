package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRecordMarker(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "enc:v1:bm9uY2U=:Y3Q=", want: true},
		{raw: "enc:v1:", want: true},
		{raw: "enc:v2:a:b", want: true},
		{raw: "enc:v10:a:b", want: true},
		{raw: "", want: false},
		{raw: "sk-ant-abc123", want: false},
		{raw: "enc:", want: false},
		{raw: "enc:legacy-token", want: false},
		{raw: "enc:not-a-record", want: false},
		{raw: "enc:1:a:b", want: false},
		{raw: "enc:v:a:b", want: false},
		{raw: "enc:vX:a:b", want: false},
		{raw: "enc:v1", want: false},
		{raw: "ENC:v1:a:b", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRecordMarker(tt.raw))
		})
	}
}

func TestEncryptedRecordStringCarriesMarker(t *testing.T) {
	rec := EncryptedRecord{Version: RecordVersion, Nonce: make([]byte, RecordNonceSize), Ciphertext: []byte("ciphertext+tag..")}

	assert.True(t, HasRecordMarker(rec.String()))
}
