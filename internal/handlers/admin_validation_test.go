package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
)

func TestTherapyCreateRejectsInvalidSubmission(t *testing.T) {
	mux := adminMux(statelessAdmin())

	rec := postForm(mux, http.MethodPost, "/therapies", url.Values{
		"subtitle": {"sin título"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: %d, body: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &body)
	if _, ok := body.Fields["title"]; !ok {
		t.Errorf("expected title field error, got %v", body.Fields)
	}
}

func TestReorderRejectsMalformedID(t *testing.T) {
	mux := adminMux(statelessAdmin())

	rec := postForm(mux, http.MethodPost, "/therapies/reorder", url.Values{
		"ids": {uuid.NewString(), "not-a-uuid"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestReorderRejectsEmptySequence(t *testing.T) {
	mux := adminMux(statelessAdmin())

	rec := postForm(mux, http.MethodPost, "/therapies/reorder", url.Values{})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	mux := adminMux(statelessAdmin())

	rec := postForm(mux, http.MethodDelete, "/faq_items/"+uuid.NewString(), url.Values{})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: %d", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	if body.Error != "confirmation required" {
		t.Errorf("error: %q", body.Error)
	}
}

func TestBeginCreateUnknownEntity(t *testing.T) {
	mux := adminMux(statelessAdmin())

	rec := postForm(mux, http.MethodPost, "/editor/not_a_table/begin-create", url.Values{})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestEditorStateLifecycle(t *testing.T) {
	mux := adminMux(statelessAdmin())
	cookie := sessionCookie("editor-session-1")

	// Fresh session is idle.
	rec := getJSON(mux, "/editor", cookie)
	var state struct {
		Mode   string `json:"mode"`
		Entity string `json:"entity"`
	}
	decodeBody(t, rec, &state)
	if state.Mode != "idle" {
		t.Fatalf("initial mode: %q", state.Mode)
	}

	// Begin a create; the response carries the form fields to render.
	rec = postForm(mux, http.MethodPost, "/editor/faq_items/begin-create", url.Values{}, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("begin-create status: %d", rec.Code)
	}
	var begin struct {
		State struct {
			Mode   string `json:"mode"`
			Entity string `json:"entity"`
		} `json:"state"`
		Fields []struct {
			Name string `json:"name"`
		} `json:"fields"`
	}
	decodeBody(t, rec, &begin)
	if begin.State.Mode != "creating" || begin.State.Entity != "faq_items" {
		t.Errorf("state: %+v", begin.State)
	}
	if len(begin.Fields) == 0 {
		t.Error("expected form fields in response")
	}

	// Beginning an edit elsewhere replaces the open create.
	id := uuid.NewString()
	rec = postForm(mux, http.MethodPost, "/editor/therapies/"+id+"/begin-edit", url.Values{}, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("begin-edit status: %d", rec.Code)
	}

	rec = getJSON(mux, "/editor", cookie)
	var after struct {
		Mode   string `json:"mode"`
		Entity string `json:"entity"`
		ID     string `json:"id"`
	}
	decodeBody(t, rec, &after)
	if after.Mode != "editing" || after.Entity != "therapies" || after.ID != id {
		t.Errorf("state after begin-edit: %+v", after)
	}

	// Cancel returns to idle.
	rec = postForm(mux, http.MethodPost, "/editor/cancel", url.Values{}, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel status: %d", rec.Code)
	}
	rec = getJSON(mux, "/editor", cookie)
	decodeBody(t, rec, &state)
	if state.Mode != "idle" {
		t.Errorf("mode after cancel: %q", state.Mode)
	}
}

func TestEditorStateIsolatedPerSession(t *testing.T) {
	mux := adminMux(statelessAdmin())

	postForm(mux, http.MethodPost, "/editor/faq_items/begin-create", url.Values{}, sessionCookie("session-a"))

	rec := getJSON(mux, "/editor", sessionCookie("session-b"))
	var state struct {
		Mode string `json:"mode"`
	}
	decodeBody(t, rec, &state)
	if state.Mode != "idle" {
		t.Errorf("other session mode: %q", state.Mode)
	}
}
