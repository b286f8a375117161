package envelope

import (
	"encoding/json"
	"strings"
	"testing"
)

type item struct {
	Clave string `json:"clave"`
}

func mustJSON(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{116135, 20, 5807},
		{100, 10, 10},
		{101, 10, 11},
		{1, 1000, 1},
		{0, 10, 0},
		{10, 0, 0},
	}
	for _, c := range cases {
		if got := Pages(c.total, c.size); got != c.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", c.total, c.size, got, c.want)
		}
	}
}

func TestNewOffsetPage_Empty(t *testing.T) {
	for _, params := range []OffsetParams{DefaultOffsetParams(), {Offset: 500, Limit: 3}} {
		body := mustJSON(t, NewOffsetPage[item](nil, 0, params))

		if body["success"] != true || body["message"] != MessageEmpty {
			t.Fatalf("unexpected empty envelope %v", body)
		}
		data, ok := body["data"].([]any)
		if !ok || len(data) != 0 {
			t.Fatalf("data must be an empty list, got %#v", body["data"])
		}
		for _, key := range []string{"total", "limit", "offset"} {
			if v, present := body[key]; !present || v != nil {
				t.Fatalf("%s must be present and null, got %#v", key, v)
			}
		}
	}
}

func TestNewOffsetPage_Results(t *testing.T) {
	items := []item{{"A"}, {"B"}}
	body := mustJSON(t, NewOffsetPage(items, 12, OffsetParams{Offset: 10, Limit: 2}))

	if body["success"] != true || body["message"] != MessageSuccess {
		t.Fatalf("unexpected envelope %v", body)
	}
	if body["total"] != float64(12) || body["limit"] != float64(2) || body["offset"] != float64(10) {
		t.Fatalf("pagination not echoed: %v", body)
	}
	if len(body["data"].([]any)) != 2 {
		t.Fatalf("expected 2 items")
	}
	if _, hasItems := body["items"]; hasItems {
		t.Fatalf("limit/offset shape must use the data key")
	}
}

func TestOffsetFailure(t *testing.T) {
	body := mustJSON(t, OffsetFailure[item]("No existe ese distrito"))
	if body["success"] != false || body["message"] != "No existe ese distrito" {
		t.Fatalf("unexpected failure %v", body)
	}
	if len(body["data"].([]any)) != 0 {
		t.Fatalf("failure must carry no items")
	}
}

func TestNewSizedPage_Results(t *testing.T) {
	items := make([]item, 20)
	body := mustJSON(t, NewSizedPage(items, 116135, SizeParams{Page: 3, Size: 20}))

	if body["pages"] != float64(5807) || body["page"] != float64(3) || body["size"] != float64(20) {
		t.Fatalf("unexpected pagination %v", body)
	}
	if body["total"] != float64(116135) {
		t.Fatalf("unexpected total %v", body["total"])
	}
	if _, hasData := body["data"]; hasData {
		t.Fatalf("page/size shape must use the items key")
	}
}

func TestNewSizedPage_EmptyAndZeroSize(t *testing.T) {
	body := mustJSON(t, NewSizedPage[item](nil, 0, SizeParams{Page: 1, Size: 0}))
	if body["message"] != MessageEmpty || body["pages"] != nil {
		t.Fatalf("zero total must use the empty form, got %v", body)
	}

	body = mustJSON(t, NewSizedPage([]item{{"A"}, {"B"}, {"C"}}, 3, SizeParams{Page: 1, Size: 0}))
	if body["size"] != float64(3) || body["pages"] != float64(1) {
		t.Fatalf("zero size must be coerced to the total, got %v", body)
	}

	body = mustJSON(t, NewSizedPage([]item{{"A"}, {"B"}, {"C"}}, 3, SizeParams{Page: 2, Size: 0}))
	if body["page"] != float64(1) || body["pages"] != float64(1) {
		t.Fatalf("all rows are on page 1 when size is zero, got %v", body)
	}
}

func TestSizedFailure(t *testing.T) {
	raw, err := json.Marshal(SizedFailure[item]("No está habilitada esa rama"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"success":false,"message":"No está habilitada esa rama","total":null,"items":[],"page":null,"size":null,"pages":null}`
	if string(raw) != want {
		t.Fatalf("got %s\nwant %s", raw, want)
	}
}

func TestSizeParams_Offset(t *testing.T) {
	if got := (SizeParams{Page: 3, Size: 20}).Offset(); got != 40 {
		t.Fatalf("Offset = %d, want 40", got)
	}
	if got := (SizeParams{Page: 0, Size: 20}).Offset(); got != 0 {
		t.Fatalf("Offset = %d, want 0", got)
	}
}

func TestOne(t *testing.T) {
	body := mustJSON(t, Found(&item{"DSAL"}))
	if body["success"] != true || !strings.Contains(body["data"].(map[string]any)["clave"].(string), "DSAL") {
		t.Fatalf("unexpected detail %v", body)
	}

	body = mustJSON(t, OneFailure[item]("No existe ese distrito"))
	if v, present := body["data"]; !present || v != nil {
		t.Fatalf("failure detail must carry data: null, got %#v", v)
	}
}
