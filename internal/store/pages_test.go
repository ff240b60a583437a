// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"reflect"
	"testing"

	"ngocms/internal/events"
	"ngocms/internal/kv"
	"ngocms/internal/models"
)

func threeSectionPage() models.Page {
	return models.Page{
		ID:    "home",
		Title: models.T("Accueil", "الرئيسية"),
		Sections: []models.Section{
			{ID: "1", Title: models.T("Un", "واحد")},
			{ID: "2", Title: models.T("Deux", "اثنان")},
			{ID: "3", Title: models.T("Trois", "ثلاثة")},
		},
	}
}

func ids(p models.Page) []string {
	out := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		out[i] = s.ID
	}
	return out
}

func TestPages_SaveLiveRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	pages := env.content.Pages

	saved, err := pages.SaveLive(env.ctx, threeSectionPage())
	if err != nil {
		t.Fatalf("SaveLive: %v", err)
	}
	if saved.Version != 1 {
		t.Errorf("first version: got %d, want 1", saved.Version)
	}

	got, ok := pages.Live(env.ctx, "home")
	if !ok {
		t.Fatal("live copy missing")
	}
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3"}) {
		t.Errorf("sections: got %v", ids(got))
	}
	for i, s := range got.Sections {
		if s.Order != i {
			t.Errorf("section %s: Order %d, want %d", s.ID, s.Order, i)
		}
	}

	index := pages.All(env.ctx)
	if len(index) != 1 || index[0].ID != "home" || len(index[0].Sections) != 0 {
		t.Errorf("index should hold one entry without sections: %+v", index)
	}

	saved, _ = pages.SaveLive(env.ctx, got)
	if saved.Version != 2 {
		t.Errorf("second version: got %d, want 2", saved.Version)
	}
	if n := len(pages.All(env.ctx)); n != 1 {
		t.Errorf("index entries after update: got %d, want 1", n)
	}
}

func TestPages_SaveLiveNotifiesOnce(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.content.Pages.SaveLive(env.ctx, threeSectionPage()); err != nil {
		t.Fatal(err)
	}

	evs := env.events()
	if n := countType(evs, events.ContentUpdated); n != 1 {
		t.Errorf("content_updated events: got %d, want 1", n)
	}
	if keys := storageKeys(evs); !reflect.DeepEqual(keys, []string{kv.PageKey("home")}) {
		t.Errorf("storage keys: got %v", keys)
	}
}

func TestPages_SaveRejectsDuplicateSections(t *testing.T) {
	env := newTestEnv(t)
	p := threeSectionPage()
	p.Sections[2].ID = "1"

	if _, err := env.content.Pages.SaveLive(env.ctx, p); !errors.Is(err, ErrInvalid) {
		t.Fatalf("got %v, want ErrInvalid", err)
	}
	if _, ok := env.content.Pages.Live(env.ctx, "home"); ok {
		t.Error("invalid page was stored")
	}
}

func TestPages_DeleteSection(t *testing.T) {
	env := newTestEnv(t)
	pages := env.content.Pages
	if _, err := pages.SaveLive(env.ctx, threeSectionPage()); err != nil {
		t.Fatal(err)
	}
	env.events()

	ok, err := pages.DeleteSection(env.ctx, "home", "3")
	if err != nil || !ok {
		t.Fatalf("DeleteSection: ok=%v err=%v", ok, err)
	}
	got, _ := pages.Live(env.ctx, "home")
	if !reflect.DeepEqual(ids(got), []string{"1", "2"}) {
		t.Errorf("remaining sections: %v", ids(got))
	}
	if n := countType(env.events(), events.ContentUpdated); n != 1 {
		t.Errorf("content_updated events: got %d, want 1", n)
	}

	if ok, _ := pages.DeleteSection(env.ctx, "home", "3"); ok {
		t.Error("deleting a missing section should report false")
	}
	if ok, _ := pages.DeleteSection(env.ctx, "nope", "1"); ok {
		t.Error("deleting from a missing page should report false")
	}
}

func TestPages_UpsertSection(t *testing.T) {
	env := newTestEnv(t)
	pages := env.content.Pages

	p, err := pages.UpsertSection(env.ctx, "about", models.Section{Title: models.T("Nous", "نحن")})
	if err != nil {
		t.Fatalf("UpsertSection on a new page: %v", err)
	}
	if len(p.Sections) != 1 || p.Sections[0].ID == "" {
		t.Fatalf("sections: %+v", p.Sections)
	}

	sec := p.Sections[0]
	sec.Content = models.T("Texte", "نص")
	p, err = pages.UpsertSection(env.ctx, "about", sec)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Sections) != 1 || p.Sections[0].Content.FR != "Texte" {
		t.Errorf("section not replaced in place: %+v", p.Sections)
	}
}

func TestPages_GetExact(t *testing.T) {
	env := newTestEnv(t)
	pages := env.content.Pages

	empty := pages.GetExact(env.ctx, "home")
	if empty.ID != "home" || empty.Sections == nil || len(empty.Sections) != 0 {
		t.Errorf("missing page: got %+v, want empty page with id", empty)
	}

	if _, err := pages.SaveLive(env.ctx, threeSectionPage()); err != nil {
		t.Fatal(err)
	}
	if got := pages.GetExact(env.ctx, "home"); len(got.Sections) != 3 {
		t.Errorf("without draft: got %d sections, want live copy", len(got.Sections))
	}

	draft := threeSectionPage()
	draft.Sections[0].Title.FR = "Brouillon"
	if _, err := pages.SaveDraft(env.ctx, draft); err != nil {
		t.Fatal(err)
	}
	if got := pages.GetExact(env.ctx, "home"); got.Sections[0].Title.FR != "Brouillon" {
		t.Errorf("with draft: got %q, want draft title", got.Sections[0].Title.FR)
	}
	if live, _ := pages.Live(env.ctx, "home"); live.Sections[0].Title.FR != "Un" {
		t.Error("saving a draft changed the live copy")
	}
}

func TestPages_EmptyDraftIsIgnored(t *testing.T) {
	env := newTestEnv(t)
	pages := env.content.Pages
	if _, err := pages.SaveLive(env.ctx, threeSectionPage()); err != nil {
		t.Fatal(err)
	}
	kv.SetItem(env.ctx, env.mem, kv.EditorKey("home"), models.Page{ID: "home"})

	if pages.HasDraft(env.ctx, "home") {
		t.Error("an empty draft should not count")
	}
	if got := pages.GetExact(env.ctx, "home"); len(got.Sections) != 3 {
		t.Errorf("GetExact should fall back to live, got %d sections", len(got.Sections))
	}
}

func TestPages_SaveDraftIfVersion(t *testing.T) {
	env := newTestEnv(t)
	pages := env.content.Pages
	live, err := pages.SaveLive(env.ctx, threeSectionPage())
	if err != nil {
		t.Fatal(err)
	}

	first, err := pages.SaveDraftIfVersion(env.ctx, live, live.Version)
	if err != nil {
		t.Fatalf("first conditional save: %v", err)
	}
	if first.Version != live.Version+1 {
		t.Errorf("draft version: got %d, want %d", first.Version, live.Version+1)
	}

	// A second editor still holding the old version loses.
	_, err = pages.SaveDraftIfVersion(env.ctx, live, live.Version)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("stale save: got %v, want ErrVersionConflict", err)
	}

	if _, err := pages.SaveDraftIfVersion(env.ctx, first, first.Version); err != nil {
		t.Errorf("save from current version: %v", err)
	}
}

func TestPages_PublishAndDiscard(t *testing.T) {
	env := newTestEnv(t)
	pages := env.content.Pages
	if _, err := pages.SaveLive(env.ctx, threeSectionPage()); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := pages.Publish(env.ctx, "home"); ok || err != nil {
		t.Errorf("publish without draft: ok=%v err=%v", ok, err)
	}

	draft := threeSectionPage()
	draft.Sections = draft.Sections[:1]
	if _, err := pages.SaveDraft(env.ctx, draft); err != nil {
		t.Fatal(err)
	}
	env.events()

	published, ok, err := pages.Publish(env.ctx, "home")
	if err != nil || !ok {
		t.Fatalf("Publish: ok=%v err=%v", ok, err)
	}
	if pages.HasDraft(env.ctx, "home") {
		t.Error("draft should be removed after publish")
	}
	live, _ := pages.Live(env.ctx, "home")
	if len(live.Sections) != 1 || live.Version != published.Version {
		t.Errorf("live after publish: %+v", live)
	}
	evs := env.events()
	if n := countType(evs, events.ContentUpdated); n != 1 {
		t.Errorf("content_updated events: got %d, want 1", n)
	}
	if keys := storageKeys(evs); len(keys) != 2 {
		t.Errorf("publish should announce both keys, got %v", keys)
	}

	if _, err := pages.SaveDraft(env.ctx, threeSectionPage()); err != nil {
		t.Fatal(err)
	}
	ok, err = pages.DiscardDraft(env.ctx, "home")
	if err != nil || !ok {
		t.Fatalf("DiscardDraft: ok=%v err=%v", ok, err)
	}
	if got := pages.GetExact(env.ctx, "home"); len(got.Sections) != 1 {
		t.Errorf("after discard the editor should see live, got %d sections", len(got.Sections))
	}
	if ok, _ := pages.DiscardDraft(env.ctx, "home"); ok {
		t.Error("second discard should report false")
	}
}

func TestPages_Delete(t *testing.T) {
	env := newTestEnv(t)
	pages := env.content.Pages
	if _, err := pages.SaveLive(env.ctx, threeSectionPage()); err != nil {
		t.Fatal(err)
	}
	if _, err := pages.SaveDraft(env.ctx, threeSectionPage()); err != nil {
		t.Fatal(err)
	}

	ok, err := pages.Delete(env.ctx, "home")
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if _, ok := pages.Live(env.ctx, "home"); ok {
		t.Error("live copy still present")
	}
	if pages.HasDraft(env.ctx, "home") {
		t.Error("draft still present")
	}
	if n := len(pages.All(env.ctx)); n != 0 {
		t.Errorf("index entries: got %d, want 0", n)
	}
	if ok, _ := pages.Delete(env.ctx, "home"); ok {
		t.Error("deleting a missing page should report false")
	}
}
