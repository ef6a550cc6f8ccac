package analyzing

import (
	"bytes"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/channel-insights/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rawSeries usa ponteiros para diferenciar chave ausente (ou null) de série vazia.
// Os elementos ficam crus para aceitar números fora da faixa de float64.
type rawSeries struct {
	CPC         *[]jsoniter.RawMessage `json:"cpc"`
	CTR         *[]jsoniter.RawMessage `json:"ctr"`
	CPA         *[]jsoniter.RawMessage `json:"cpa"`
	Conversions *[]jsoniter.RawMessage `json:"conversions"`
}

func (r rawSeries) values(m domain.Measure) *[]jsoniter.RawMessage {
	switch m {
	case domain.MeasureCPC:
		return r.CPC
	case domain.MeasureCTR:
		return r.CTR
	case domain.MeasureCPA:
		return r.CPA
	case domain.MeasureConversions:
		return r.Conversions
	}
	return nil
}

// ReadSnapshot lê todo o conteúdo de r e decodifica o snapshot de métricas
func ReadSnapshot(r io.Reader) (*domain.MetricsSnapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewInputError(KindJSON, errors.Wrap(err, "read input"))
	}

	return DecodeSnapshot(data)
}

// DecodeSnapshot decodifica {"metrics": {...}} preservando a ordem dos canais.
// A ausência da chave "metrics" resulta em um snapshot vazio.
func DecodeSnapshot(data []byte) (*domain.MetricsSnapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, NewInputError(KindJSON, ErrEmptyInput)
	}

	if err := checkSyntax(data); err != nil {
		return nil, NewInputError(KindJSON, err)
	}

	var doc map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, NewInputError(KindValidation, ErrNotAnObject)
	}
	if doc == nil {
		return nil, NewInputError(KindValidation, ErrNotAnObject)
	}

	snapshot := &domain.MetricsSnapshot{}

	raw, ok := doc["metrics"]
	if !ok {
		return snapshot, nil
	}

	iter := jsoniter.ParseBytes(json, raw)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, NewInputError(KindValidation, ErrMetricsObject)
	}

	var channelErr error
	iter.ReadObjectCB(func(it *jsoniter.Iterator, name string) bool {
		series, err := decodeSeries(name, it.SkipAndReturnBytes())
		if err != nil {
			channelErr = err
			return false
		}
		snapshot.Set(name, series)
		return true
	})
	if channelErr != nil {
		return nil, NewInputError(KindValidation, channelErr)
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, NewInputError(KindValidation, errors.Wrap(iter.Error, "metrics"))
	}

	return snapshot, nil
}

// checkSyntax exige um único valor JSON bem formado, sem conteúdo após ele
func checkSyntax(data []byte) error {
	iter := jsoniter.ParseBytes(json, data)
	iter.Skip()
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}

	// Ao fim dos dados o iterador registra io.EOF; qualquer outro token é sobra
	iter.WhatIsNext()
	if iter.Error != io.EOF {
		return ErrExtraData
	}

	return nil
}

// parseNumber converte um elemento da série. Números além da faixa de float64
// viram ±Inf.
func parseNumber(raw jsoniter.RawMessage) (float64, bool) {
	text := string(bytes.TrimSpace(raw))
	if text == "" || (text[0] != '-' && (text[0] < '0' || text[0] > '9')) {
		return 0, false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return value, true
}

func decodeSeries(name string, data []byte) (domain.ChannelSeries, error) {
	var raw rawSeries
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.ChannelSeries{}, errors.Wrapf(err, "channel %q", name)
	}

	var series domain.ChannelSeries
	for _, m := range domain.Measures {
		values := raw.values(m)
		if values == nil {
			return domain.ChannelSeries{}, errors.Wrapf(ErrMissingMeasure, "channel %q: %s", name, m)
		}

		out := make([]float64, 0, len(*values))
		for i, v := range *values {
			number, ok := parseNumber(v)
			if !ok {
				return domain.ChannelSeries{}, errors.Wrapf(ErrNotANumber, "channel %q: %s[%d]", name, m, i)
			}
			out = append(out, number)
		}

		switch m {
		case domain.MeasureCPC:
			series.CPC = out
		case domain.MeasureCTR:
			series.CTR = out
		case domain.MeasureCPA:
			series.CPA = out
		case domain.MeasureConversions:
			series.Conversions = out
		}
	}

	return series, nil
}
