package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"panaderia_api/internal/domain/entities"
)

var ErrUnparseableNotification = errors.New("unparseable notification")

// ParseNotification normalises the processor callback into a payment id and a
// topic. The payment id comes from the first non-empty of query data.id, query
// id, body data.id, body id; the topic from query type, query topic, body type,
// body topic. Body fields of an unexpected type are skipped. A body that is not
// a JSON object is only an error when the query does not identify the payment.
func ParseNotification(query url.Values, body []byte) (entities.PaymentNotification, error) {
	fields, bodyErr := decodeNotificationBody(body)

	var dataID any
	if data, ok := fields["data"].(map[string]any); ok {
		dataID = data["id"]
	}
	n := entities.PaymentNotification{
		PaymentID: firstNonEmpty(query.Get("data.id"), query.Get("id"), idString(dataID), idString(fields["id"])),
		Topic:     firstNonEmpty(query.Get("type"), query.Get("topic"), textField(fields["type"]), textField(fields["topic"])),
	}
	if bodyErr != nil && n.PaymentID == "" {
		return entities.PaymentNotification{}, bodyErr
	}
	return n, nil
}

func decodeNotificationBody(body []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return nil, ErrUnparseableNotification
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, ErrUnparseableNotification
	}
	return fields, nil
}

func textField(v any) string {
	s, _ := v.(string)
	return s
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
