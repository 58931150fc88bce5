package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/assets"
)

const sampleCode = "a3f1c2d4-5e6f-4a8b-9c0d-1e2f3a4b5c6d"

func TestParseScanPayload_SobreCompleto(t *testing.T) {
	value, enveloped := assets.ParseScanPayload("ACTIVOS:ASSET:" + sampleCode)
	assert.True(t, enveloped)
	assert.Equal(t, sampleCode, value)
}

func TestParseScanPayload_RecortaEspacios(t *testing.T) {
	value, enveloped := assets.ParseScanPayload("  PAT-000042\n")
	assert.False(t, enveloped)
	assert.Equal(t, "PAT-000042", value)

	// Espacios alrededor del sobre también se toleran.
	value, enveloped = assets.ParseScanPayload("  ACTIVOS:ASSET:" + sampleCode + "  ")
	assert.True(t, enveloped)
	assert.Equal(t, sampleCode, value)
}

func TestParseScanPayload_SinSobre(t *testing.T) {
	value, enveloped := assets.ParseScanPayload(sampleCode)
	assert.False(t, enveloped)
	assert.Equal(t, sampleCode, value)
}

func TestLooksLikeCode(t *testing.T) {
	assert.True(t, assets.LooksLikeCode(sampleCode))
	// Guiones opcionales: algunos lectores los comen.
	assert.True(t, assets.LooksLikeCode("a3f1c2d45e6f4a8b9c0d1e2f3a4b5c6d"))
	assert.False(t, assets.LooksLikeCode("PAT-000042"))
	assert.False(t, assets.LooksLikeCode(""))
	assert.False(t, assets.LooksLikeCode("no-es-un-code"))
}

func TestScanPayload_IdaYVuelta(t *testing.T) {
	payload := assets.ScanPayload(sampleCode)
	value, enveloped := assets.ParseScanPayload(payload)
	assert.True(t, enveloped)
	assert.Equal(t, sampleCode, value)
}

func TestFormatTag(t *testing.T) {
	assert.Equal(t, "PAT-000042", assets.FormatTag("PAT", 6, 42))
	assert.Equal(t, "000007", assets.FormatTag("", 6, 7))
	assert.Equal(t, "AF-0013", assets.FormatTag("AF", 4, 13))
	// El valor nunca se trunca aunque exceda el ancho.
	assert.Equal(t, "PAT-1000000", assets.FormatTag("PAT", 6, 1000000))
}
