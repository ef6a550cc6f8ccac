package analyzing

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-insights/internal/domain"
)

func TestDecodeSnapshot_PreservesDocumentOrder(t *testing.T) {
	input := `{"metrics": {
		"Yandex": {"cpc": [1, 1], "ctr": [1, 1], "cpa": [1, 1], "conversions": [1, 1]},
		"Google": {"cpc": [2, 2], "ctr": [10, 9], "cpa": [5, 5], "conversions": [100, 100]},
		"Avito":  {"cpc": [3], "ctr": [3], "cpa": [3], "conversions": [3]}
	}}`

	snapshot, err := DecodeSnapshot([]byte(input))
	require.NoError(t, err)
	require.Equal(t, 3, snapshot.Len())

	assert.Equal(t, "Yandex", snapshot.Channels[0].Name)
	assert.Equal(t, "Google", snapshot.Channels[1].Name)
	assert.Equal(t, "Avito", snapshot.Channels[2].Name)

	assert.Equal(t, domain.ChannelSeries{
		CPC:         []float64{2, 2},
		CTR:         []float64{10, 9},
		CPA:         []float64{5, 5},
		Conversions: []float64{100, 100},
	}, snapshot.Channels[1].Series)
}

func TestDecodeSnapshot_DuplicateChannelKeepsFirstPosition(t *testing.T) {
	input := `{"metrics": {
		"A": {"cpc": [1], "ctr": [1], "cpa": [1], "conversions": [1]},
		"B": {"cpc": [2], "ctr": [2], "cpa": [2], "conversions": [2]},
		"A": {"cpc": [9], "ctr": [9], "cpa": [9], "conversions": [9]}
	}}`

	snapshot, err := DecodeSnapshot([]byte(input))
	require.NoError(t, err)
	require.Equal(t, 2, snapshot.Len())

	assert.Equal(t, "A", snapshot.Channels[0].Name)
	assert.Equal(t, []float64{9}, snapshot.Channels[0].Series.CTR)
	assert.Equal(t, "B", snapshot.Channels[1].Name)
}

func TestDecodeSnapshot_EmptyInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Documento sem metrics", input: `{}`},
		{name: "Metrics vazio", input: `{"metrics": {}}`},
		{name: "Chaves desconhecidas são ignoradas", input: `{"period": "2024-01", "metrics": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := DecodeSnapshot([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, 0, snapshot.Len())
		})
	}
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     InputErrorKind
		sentinel error
		contains string
	}{
		{
			name:     "JSON truncado",
			input:    `{"metrics": {"Google": `,
			kind:     KindJSON,
			contains: "Invalid JSON: ",
		},
		{
			name:     "Entrada vazia",
			input:    ``,
			kind:     KindJSON,
			contains: "Invalid JSON: ",
		},
		{
			name:     "Conteúdo após o documento",
			input:    `{"metrics":{}} garbage`,
			kind:     KindJSON,
			sentinel: ErrExtraData,
			contains: "Invalid JSON: extra data",
		},
		{
			name:     "Dois documentos seguidos",
			input:    `{"metrics":{}} {}`,
			kind:     KindJSON,
			sentinel: ErrExtraData,
		},
		{
			name:     "Chave de fechamento sobrando",
			input:    `{"metrics":{}}}`,
			kind:     KindJSON,
			sentinel: ErrExtraData,
		},
		{
			name:     "Documento não é objeto",
			input:    `[1, 2, 3]`,
			kind:     KindValidation,
			sentinel: ErrNotAnObject,
		},
		{
			name:     "Documento null",
			input:    `null`,
			kind:     KindValidation,
			sentinel: ErrNotAnObject,
		},
		{
			name:     "Metrics null",
			input:    `{"metrics": null}`,
			kind:     KindValidation,
			sentinel: ErrMetricsObject,
		},
		{
			name:     "Metrics é uma lista",
			input:    `{"metrics": []}`,
			kind:     KindValidation,
			sentinel: ErrMetricsObject,
		},
		{
			name:     "Canal sem cpa",
			input:    `{"metrics": {"Google": {"cpc": [1, 1], "ctr": [1, 1], "conversions": [1, 1]}}}`,
			kind:     KindValidation,
			sentinel: ErrMissingMeasure,
			contains: `channel "Google": cpa`,
		},
		{
			name:     "Canal null",
			input:    `{"metrics": {"Google": null}}`,
			kind:     KindValidation,
			sentinel: ErrMissingMeasure,
			contains: `channel "Google": cpc`,
		},
		{
			name:     "Valor null dentro da série",
			input:    `{"metrics": {"Google": {"cpc": [1, 1], "ctr": [1, null], "cpa": [1, 1], "conversions": [1, 1]}}}`,
			kind:     KindValidation,
			sentinel: ErrNotANumber,
			contains: `ctr[1]`,
		},
		{
			name:     "Valor não numérico",
			input:    `{"metrics": {"Google": {"cpc": ["a"], "ctr": [1], "cpa": [1], "conversions": [1]}}}`,
			kind:     KindValidation,
			contains: `channel "Google"`,
		},
		{
			name:     "Booleano na série",
			input:    `{"metrics": {"Google": {"cpc": [1, 1], "ctr": [1, 1], "cpa": [true, 1], "conversions": [1, 1]}}}`,
			kind:     KindValidation,
			sentinel: ErrNotANumber,
			contains: `cpa[0]`,
		},
		{
			name:     "Canal não é objeto",
			input:    `{"metrics": {"Google": 42}}`,
			kind:     KindValidation,
			contains: `channel "Google"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := DecodeSnapshot([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, snapshot)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.kind, inputErr.Kind)
			assert.True(t, IsInputError(err))

			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
			if tt.kind == KindValidation {
				assert.True(t, strings.HasPrefix(err.Error(), "Invalid input: "))
			}
		})
	}
}

func TestDecodeSnapshot_TrailingWhitespaceIsAccepted(t *testing.T) {
	snapshot, err := DecodeSnapshot([]byte("{\"metrics\": {}}\n\t "))
	require.NoError(t, err)
	assert.Zero(t, snapshot.Len())
}

func TestDecodeSnapshot_OutOfRangeNumbersBecomeInfinite(t *testing.T) {
	input := `{"metrics": {"Google": {"cpc": [1, 1], "ctr": [1e400, 1], "cpa": [-1e400, 1], "conversions": [1e-400, 1]}}}`

	snapshot, err := DecodeSnapshot([]byte(input))
	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Len())

	series := snapshot.Channels[0].Series
	assert.True(t, math.IsInf(series.CTR[0], 1))
	assert.True(t, math.IsInf(series.CPA[0], -1))
	assert.Equal(t, 0.0, series.Conversions[0])
}

func TestReadSnapshot(t *testing.T) {
	snapshot, err := ReadSnapshot(strings.NewReader(`{"metrics":{"Google":{"cpc":[1,1],"ctr":[10,9],"cpa":[5,5],"conversions":[100,100]}}}`))
	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Len())
	assert.Equal(t, "Google", snapshot.Channels[0].Name)
}
