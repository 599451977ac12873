package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intField(v int64) Field {
	return Field{raw: strconv.FormatInt(v, 10), set: true, numeric: true}
}

func floatField(v float64) Field {
	return Field{raw: strconv.FormatFloat(v, 'f', -1, 64), set: true, numeric: true}
}

func stringField(v string) Field {
	return Field{raw: v, set: true}
}

func decodeField(t *testing.T, raw string) Field {
	t.Helper()
	var request struct {
		Value Field `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"value":`+raw+`}`), &request))
	return request.Value
}

func TestField_Presence(t *testing.T) {
	tests := []struct {
		raw     string
		set     bool
		missing bool
		empty   bool
	}{
		{`null`, false, true, true},
		{`""`, true, true, true},
		{`"  "`, true, true, true},
		{`0`, true, false, true},
		{`"0"`, true, false, false},
		{`5`, true, false, false},
		{`"abc"`, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			field := decodeField(t, tt.raw)
			assert.Equal(t, tt.set, field.IsSet())
			assert.Equal(t, tt.missing, field.IsMissing())
			assert.Equal(t, tt.empty, field.IsEmpty())
		})
	}

	var absent Field
	assert.True(t, absent.IsMissing())
}

func TestField_Int64(t *testing.T) {
	for raw, want := range map[string]int64{`7`: 7, `"7"`: 7, `" 12 "`: 12, `3.0`: 3, `-2`: -2} {
		value, err := decodeField(t, raw).Int64()
		require.NoError(t, err, raw)
		assert.Equal(t, want, value, raw)
	}
	for _, raw := range []string{`2.5`, `"two"`, `""`, `1e300`} {
		_, err := decodeField(t, raw).Int64()
		assert.Error(t, err, raw)
	}
}

func TestField_Float64(t *testing.T) {
	value, err := decodeField(t, `"12.75"`).Float64()
	require.NoError(t, err)
	assert.Equal(t, 12.75, value)

	for _, raw := range []string{`"NaN"`, `"Inf"`, `"ten"`} {
		_, err := decodeField(t, raw).Float64()
		assert.Error(t, err, raw)
	}
}

func TestField_RejectsNonScalars(t *testing.T) {
	var request RequestFine
	assert.Error(t, json.Unmarshal([]byte(`{"member_id":[1]}`), &request))
	assert.Error(t, json.Unmarshal([]byte(`{"member_id":true}`), &request))
}

func TestField_Marshal(t *testing.T) {
	data, err := json.Marshal(RequestStudyRoom{RoomID: intField(1), MemberID: stringField("2"), BookingDate: "2025-07-01", Hours: floatField(2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"room_id":1,"member_id":"2","booking_date":"2025-07-01","hours":2}`, string(data))

	data, err = json.Marshal(RequestFine{MemberID: intField(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"member_id":1,"fine_amount":null}`, string(data))
}

func TestParseStudyRoomBooking(t *testing.T) {
	params, err := parseStudyRoomBooking(RequestStudyRoom{
		RoomID:      stringField("3"),
		MemberID:    intField(9),
		BookingDate: "01/02/2025",
		Hours:       stringField("8"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), params.RoomID)
	assert.Equal(t, int64(9), params.MemberID)
	assert.Equal(t, "2025-01-02", params.BookingDate.String())
	assert.Equal(t, 8.0, params.DurationHours)

	_, err = parseStudyRoomBooking(RequestStudyRoom{RoomID: intField(3), MemberID: intField(9), BookingDate: "2025-01-02", Hours: intField(0)})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindRange, reqErr.Kind)
	assert.Equal(t, 400, reqErr.Status())
}

func TestParseStudyRoomBooking_FractionalHours(t *testing.T) {
	params, err := parseStudyRoomBooking(RequestStudyRoom{RoomID: intField(1), MemberID: intField(1), BookingDate: "2025-07-01", Hours: floatField(1.5)})
	require.NoError(t, err)
	assert.Equal(t, 1.5, params.DurationHours)

	_, err = parseStudyRoomBooking(RequestStudyRoom{RoomID: intField(1), MemberID: intField(1), BookingDate: "2025-07-01", Hours: floatField(8.5)})
	assert.EqualError(t, err, bookingHoursRange)
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		target any
	}{
		{"truncated value", `{"title":`, &RequestBook{}},
		{"unterminated object", `{"title":"Dune"`, &RequestBook{}},
		{"truncated field", `{"room_id":1,"hours":`, &RequestStudyRoom{}},
		{"array field", `{"room_id":[1]}`, &RequestStudyRoom{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeRequest(httptest.NewRequest(http.MethodPost, ApiBooksPath, strings.NewReader(tt.body)), tt.target)
			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, KindValidation, reqErr.Kind)
			assert.Equal(t, invalidRequestMessage, reqErr.Message)
		})
	}

	request := RequestBook{}
	assert.NoError(t, decodeRequest(httptest.NewRequest(http.MethodPost, ApiBooksPath, strings.NewReader("")), &request))
	assert.Equal(t, RequestBook{}, request)
}

func TestParseIssue_KeepsDates(t *testing.T) {
	params, err := parseIssue(RequestIssue{BookID: intField(1), MemberID: intField(2), IssueDate: "today", DueDate: "2025-02-30"})
	require.NoError(t, err)
	assert.Equal(t, "today", params.IssueDate)
	assert.Equal(t, "2025-02-30", params.DueDate)

	_, err = parseIssue(RequestIssue{BookID: intField(0), MemberID: intField(2), IssueDate: "a", DueDate: "b"})
	assert.EqualError(t, err, issueFieldsRequired)
}

func TestParseFine(t *testing.T) {
	params, err := parseFine(RequestFine{MemberID: intField(5), FineAmount: floatField(0)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), params.ID)
	assert.Equal(t, 0.0, params.FineAmount)

	params, err = parseFine(RequestFine{MemberID: intField(5), FineAmount: floatField(-3.5)})
	require.NoError(t, err)
	assert.Equal(t, -3.5, params.FineAmount)

	_, err = parseFine(RequestFine{MemberID: intField(5)})
	assert.EqualError(t, err, "All fields required")

	_, err = parseFine(RequestFine{MemberID: intField(5), FineAmount: stringField("")})
	assert.EqualError(t, err, "fine_amount must be a number")
}

func TestRequestError_Status(t *testing.T) {
	assert.Equal(t, 400, validationError("x").Status())
	assert.Equal(t, 400, (&RequestError{Kind: KindConflict}).Status())
	assert.Equal(t, 404, (&RequestError{Kind: KindNotFound}).Status())
	assert.Equal(t, 500, (&RequestError{Kind: KindStore}).Status())

	err := storeError("Failed to add book", assert.AnError)
	assert.Equal(t, KindStore, err.Kind)
	assert.ErrorIs(t, err, assert.AnError)
}
