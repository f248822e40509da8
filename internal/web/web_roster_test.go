package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/r6status/internal/factory"
)

func TestHomeEmptyRoster(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#team", "alpha")
	assertContainsElement(t, doc, "#empty-roster")
	assertNotContainsElement(t, doc, "#roster")
	assertContainsElement(t, doc, "form#update-form[action='/status/update']")
	assertContainsElement(t, doc, "form#add-form[action='/roster/add']")
	assertContainsElement(t, doc, "form#remove-form[action='/roster/remove']")
}

func TestAddShowsPINOnce(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueString("7315")

	pin := ts.addPlayer("Ash", "")
	assert.Equal(t, "7315", pin)

	// The PIN is not repeated on a later visit
	doc := parseHTML(ts.get("/").Body)
	assertNotContainsElement(t, doc, "#new-player")
	assertContainsText(t, doc, "#roster tr.player td.username", "Ash")
	assertContainsText(t, doc, "#roster tr.player td.status", "Inactive")
}

func TestAddDoesNotPutPINInCookie(t *testing.T) {
	ts := newWebTestServer(t)
	form := url.Values{"adminPin": {factory.TestAdminPIN}, "username": {"Ash"}, "pin": {"4242"}}

	rr := ts.post("/roster/add", form)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	for _, c := range rr.Result().Cookies() {
		assert.NotContains(t, c.Value, "4242")
	}
}

func TestRosterIsSorted(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("thermite", "1")
	ts.addPlayer("Ash", "2")
	ts.addPlayer("mute", "3")

	doc := parseHTML(ts.get("/").Body)
	names := doc.Find("#roster tr.player td.username").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"Ash", "mute", "thermite"}, names)
}

func TestUpdateStatusThroughForm(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Ash", "1234")

	form := url.Values{"username": {"ash"}, "pin": {"1234"}, "active": {"true"}}
	rr := ts.post("/status/update", form)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-success", "Ash is now active")
	assertContainsText(t, doc, "#roster tr.player td.status.active", "Active")
	assertContainsElement(t, doc, "#roster tr.player td.updated time[datetime='2024-01-01T12:00:00.000Z']")
}

func TestRemoveThroughForm(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Ash", "1234")

	form := url.Values{"adminPin": {factory.TestAdminPIN}, "username": {"Ash"}}
	rr := ts.post("/roster/remove", form)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-success", "Removed Ash")
	assertContainsElement(t, doc, "#empty-roster")
}

func TestUsernamesAreEscaped(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer(`<script>alert(1)</script>`, "1234")

	rr := ts.get("/")
	assert.NotContains(t, rr.Body.String(), "<script>alert(1)</script>")

	doc := parseHTML(rr.Body)
	assert.Equal(t, 0, doc.Find("main script").Length())
}
