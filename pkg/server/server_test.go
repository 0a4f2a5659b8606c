package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fieldwork-dev/fieldwork/pkg/event"
	"github.com/fieldwork-dev/fieldwork/pkg/form"
)

// frame is the union of PatchFrame and ErrorFrame for test decoding.
type frame struct {
	Type    string  `json:"type"`
	Seq     uint64  `json:"seq"`
	Patches []Patch `json:"patches"`
	Code    string  `json:"code"`
	Message string  `json:"message"`
}

func contactSpec(hideDelay time.Duration) FormSpec {
	return FormSpec{
		Name:        "contact",
		SuccessText: "Thanks! We'll be in touch soon.",
		HideDelay:   hideDelay,
		Fields: []FieldSpec{
			{Name: "name", Label: "Name", Required: true},
			{Name: "email", Label: "Email", Required: true},
			{Name: "message", Label: "Message", Required: true},
		},
	}
}

func startServer(t *testing.T, specs ...FormSpec) (*httptest.Server, *websocket.Conn) {
	t.Helper()

	srv := New(DefaultConfig())
	for _, spec := range specs {
		if err := srv.RegisterForm(spec); err != nil {
			t.Fatalf("RegisterForm failed: %v", err)
		}
	}

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { ws.Close() })

	return ts, ws
}

func readFrame(t *testing.T, ws *websocket.Conn) frame {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f frame
	if err := ws.ReadJSON(&f); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	return f
}

func sendEvent(t *testing.T, ws *websocket.Conn, evt event.Event) {
	t.Helper()
	if err := ws.WriteJSON(evt); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
}

// findPatch returns the first patch matching op and field ("" matches any).
func findPatch(patches []Patch, op, field string) *Patch {
	for i := range patches {
		if patches[i].Op == op && (field == "" || patches[i].Field == field) {
			return &patches[i]
		}
	}
	return nil
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := startServer(t, contactSpec(0))

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
}

func TestRegisterFormRejectsDuplicates(t *testing.T) {
	srv := New(DefaultConfig())
	if err := srv.RegisterForm(contactSpec(0)); err != nil {
		t.Fatalf("First RegisterForm failed: %v", err)
	}
	if err := srv.RegisterForm(contactSpec(0)); err == nil {
		t.Error("Expected error for duplicate form")
	}
	if got := srv.Forms(); len(got) != 1 {
		t.Errorf("Expected 1 registered form, got %v", got)
	}
}

func TestSubmitEmptyFormReturnsErrors(t *testing.T) {
	_, ws := startServer(t, contactSpec(0))

	sendEvent(t, ws, event.Event{Form: "contact", Type: event.TypeSubmit})
	f := readFrame(t, ws)

	if f.Type != FrameTypePatches {
		t.Fatalf("Expected patches frame, got %+v", f)
	}
	if findPatch(f.Patches, OpPreventDefault, "") == nil {
		t.Error("Expected preventDefault patch for submit")
	}
	for _, name := range []string{"name", "email", "message"} {
		p := findPatch(f.Patches, OpShowError, name)
		if p == nil {
			t.Errorf("Expected showError for %s", name)
			continue
		}
		if p.Message != form.MsgRequired {
			t.Errorf("Expected %q for %s, got %q", form.MsgRequired, name, p.Message)
		}
	}
	if findPatch(f.Patches, OpShowSuccess, "") != nil {
		t.Error("Expected no success patch on failed submit")
	}
}

func TestBlurValidatesSingleField(t *testing.T) {
	_, ws := startServer(t, contactSpec(0))

	sendEvent(t, ws, event.Event{Form: "contact", Field: "email", Type: event.TypeInput, Value: "a@b"})
	sendEvent(t, ws, event.Event{Form: "contact", Field: "email", Type: event.TypeBlur})
	f := readFrame(t, ws)

	p := findPatch(f.Patches, OpShowError, "email")
	if p == nil {
		t.Fatalf("Expected showError for email, got %+v", f.Patches)
	}
	if p.Message != form.MsgInvalidEmail {
		t.Errorf("Expected %q, got %q", form.MsgInvalidEmail, p.Message)
	}
	if findPatch(f.Patches, OpShowError, "name") != nil {
		t.Error("Expected blur to validate only the blurred field")
	}
}

func TestValidSubmitShowsSuccessAndResets(t *testing.T) {
	_, ws := startServer(t, contactSpec(time.Hour))

	sendEvent(t, ws, event.Event{Form: "contact", Field: "name", Type: event.TypeInput, Value: "Alice"})
	sendEvent(t, ws, event.Event{Form: "contact", Field: "email", Type: event.TypeInput, Value: "alice@example.com"})
	sendEvent(t, ws, event.Event{Form: "contact", Field: "message", Type: event.TypeInput, Value: "Hello there, this is long enough."})
	sendEvent(t, ws, event.Event{Form: "contact", Type: event.TypeSubmit})

	f := readFrame(t, ws)
	if f.Type != FrameTypePatches {
		t.Fatalf("Expected patches frame, got %+v", f)
	}
	if p := findPatch(f.Patches, OpShowSuccess, ""); p == nil {
		t.Error("Expected showSuccess patch")
	} else if p.Message != "Thanks! We'll be in touch soon." {
		t.Errorf("Expected configured success text, got %q", p.Message)
	}
	if findPatch(f.Patches, OpScrollTo, "") == nil {
		t.Error("Expected scrollTo patch")
	}
	for _, name := range []string{"name", "email", "message"} {
		p := findPatch(f.Patches, OpSetValue, name)
		if p == nil {
			t.Errorf("Expected value reset for %s", name)
			continue
		}
		if p.Value != "" {
			t.Errorf("Expected empty reset value for %s, got %q", name, p.Value)
		}
	}
	if findPatch(f.Patches, OpShowError, "") != nil {
		t.Errorf("Expected no errors on valid submit, got %+v", f.Patches)
	}
}

func TestSuccessAutoHidesOverWire(t *testing.T) {
	_, ws := startServer(t, contactSpec(50*time.Millisecond))

	sendEvent(t, ws, event.Event{Form: "contact", Field: "name", Type: event.TypeInput, Value: "Alice"})
	sendEvent(t, ws, event.Event{Form: "contact", Field: "email", Type: event.TypeInput, Value: "alice@example.com"})
	sendEvent(t, ws, event.Event{Form: "contact", Field: "message", Type: event.TypeInput, Value: "Hello there, this is long enough."})
	sendEvent(t, ws, event.Event{Form: "contact", Type: event.TypeSubmit})

	f := readFrame(t, ws)
	if findPatch(f.Patches, OpShowSuccess, "") == nil {
		t.Fatalf("Expected showSuccess patch, got %+v", f.Patches)
	}

	// The auto-hide arrives as its own frame, pushed by the server.
	f = readFrame(t, ws)
	if findPatch(f.Patches, OpHideSuccess, "") == nil {
		t.Errorf("Expected hideSuccess patch, got %+v", f.Patches)
	}
}

func TestUnknownFormReturnsErrorFrame(t *testing.T) {
	_, ws := startServer(t, contactSpec(0))

	sendEvent(t, ws, event.Event{Form: "nope", Type: event.TypeSubmit})
	f := readFrame(t, ws)

	if f.Type != FrameTypeError {
		t.Fatalf("Expected error frame, got %+v", f)
	}
	if f.Code != "F010" {
		t.Errorf("Expected code F010, got %q", f.Code)
	}
}

func TestConnectionsAreIsolated(t *testing.T) {
	srv := New(DefaultConfig())
	if err := srv.RegisterForm(contactSpec(0)); err != nil {
		t.Fatalf("RegisterForm failed: %v", err)
	}
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	a, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer a.Close()
	b, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer b.Close()

	// Put a's email in error, then blur b's untouched email field. b must
	// see its own empty-required error, not a's state.
	sendEvent(t, a, event.Event{Form: "contact", Field: "email", Type: event.TypeInput, Value: "a@b"})
	sendEvent(t, a, event.Event{Form: "contact", Field: "email", Type: event.TypeBlur})
	fa := readFrame(t, a)
	if p := findPatch(fa.Patches, OpShowError, "email"); p == nil || p.Message != form.MsgInvalidEmail {
		t.Fatalf("Expected invalid email error on a, got %+v", fa.Patches)
	}

	sendEvent(t, b, event.Event{Form: "contact", Field: "email", Type: event.TypeBlur})
	fb := readFrame(t, b)
	if p := findPatch(fb.Patches, OpShowError, "email"); p == nil || p.Message != form.MsgRequired {
		t.Fatalf("Expected required error on b, got %+v", fb.Patches)
	}
}
