// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"ngocms/internal/events"
	"ngocms/internal/kv"
	"ngocms/internal/models"
	"ngocms/internal/store"
)

func newContent(t *testing.T) (*store.Content, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	return store.New(kv.NewMemory(0), bus), bus
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	c, _ := newContent(t)

	seeded, err := Initialize(ctx, c)
	if err != nil || !seeded {
		t.Fatalf("Initialize: seeded=%v err=%v", seeded, err)
	}
	if !Initialized(ctx, c.KV) {
		t.Error("dbInitialized should be true after seeding")
	}

	if got := len(c.News.All(ctx)); got != len(DefaultNews()) {
		t.Errorf("news: got %d items", got)
	}
	if got := len(c.Resources.All(ctx)); got != len(DefaultResources()) {
		t.Errorf("resources: got %d items", got)
	}
	if got := c.Media.All(ctx); got == nil || len(got) != 0 {
		t.Errorf("media library should be an empty list, got %#v", got)
	}
	if ws, ok := c.Structure.Get(ctx); !ok || len(ws.MainMenu) == 0 {
		t.Errorf("structure: ok=%v menu=%d", ok, len(ws.MainMenu))
	}
	if got := len(c.Pages.All(ctx)); got != len(Canonical()) {
		t.Errorf("page index: got %d entries, want %d", got, len(Canonical()))
	}
}

func TestInitialize_SkipsWhenSeeded(t *testing.T) {
	ctx := context.Background()
	c, _ := newContent(t)
	if _, err := Initialize(ctx, c); err != nil {
		t.Fatal(err)
	}

	// An edit made after seeding must survive a restart.
	if _, err := c.News.Delete(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	seeded, err := Initialize(ctx, c)
	if err != nil || seeded {
		t.Fatalf("second Initialize: seeded=%v err=%v", seeded, err)
	}
	if _, ok := c.News.ByID(ctx, "1"); ok {
		t.Error("seeding again restored a deleted item")
	}
}

func TestDefaultPagesMatchCanonical(t *testing.T) {
	canon := Canonical()
	pages := DefaultPages()
	if pages[0].ID != PageHome {
		t.Errorf("first page: got %q, want home", pages[0].ID)
	}
	for _, p := range pages {
		def, ok := canon[p.ID]
		if !ok {
			t.Errorf("page %s has no canonical defaults", p.ID)
			continue
		}
		if len(p.Sections) != len(def.Sections) {
			t.Errorf("page %s: %d sections, want %d", p.ID, len(p.Sections), len(def.Sections))
		}
		if !def.Title.Complete() {
			t.Errorf("page %s: default title must be bilingual", p.ID)
		}
	}
}

func TestHomeSectionOrder(t *testing.T) {
	home := Canonical()[PageHome]
	ids := make([]string, len(home.Sections))
	for i, s := range home.Sections {
		ids[i] = s.ID
	}
	if !reflect.DeepEqual(ids, HomeSectionOrder) {
		t.Errorf("home defaults %v, want %v", ids, HomeSectionOrder)
	}
}

func TestSeededPagesAreComplete(t *testing.T) {
	ctx := context.Background()
	c, _ := newContent(t)
	if _, err := Initialize(ctx, c); err != nil {
		t.Fatal(err)
	}
	completer := store.NewCompleter(c.Pages, Canonical())

	for id := range Canonical() {
		before, _ := c.Pages.Live(ctx, id)
		after, err := completer.EnsureSections(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if after.Version != before.Version {
			t.Errorf("page %s was incomplete after seeding", id)
		}
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	c, bus := newContent(t)
	if _, err := Initialize(ctx, c); err != nil {
		t.Fatal(err)
	}

	kv.SetItem(ctx, c.KV, kv.KeyAdminAuth, true)
	kv.SetItem(ctx, c.KV, kv.KeyLanguage, models.LangAR)
	kv.SetItem(ctx, c.KV, "custom", "junk")
	if _, err := c.News.Delete(ctx, "2"); err != nil {
		t.Fatal(err)
	}
	draft := models.Page{ID: PageHome, Sections: []models.Section{{ID: "hero"}}}
	if _, err := c.Pages.SaveDraft(ctx, draft); err != nil {
		t.Fatal(err)
	}

	sub := bus.Subscribe(events.TypeFilter(events.ContentUpdated), 0)
	defer sub.Close()

	if err := Reset(ctx, c, bus); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if auth, ok := kv.GetItem[bool](ctx, c.KV, kv.KeyAdminAuth); !ok || !auth {
		t.Error("adminAuth should survive a reset")
	}
	if lang, _ := kv.GetItem[string](ctx, c.KV, kv.KeyLanguage); lang != models.LangAR {
		t.Errorf("language: got %q, want ar", lang)
	}
	if _, ok, _ := c.KV.Get(ctx, "custom"); ok {
		t.Error("unknown keys should be wiped")
	}
	if _, ok := c.News.ByID(ctx, "2"); !ok {
		t.Error("deleted default news should be restored")
	}
	if c.Pages.HasDraft(ctx, PageHome) {
		t.Error("drafts should be wiped")
	}
	if !Initialized(ctx, c.KV) {
		t.Error("dbInitialized should be true after reset")
	}

	n := 0
	for {
		select {
		case <-sub.C():
			n++
			continue
		default:
		}
		break
	}
	if n != 1 {
		t.Errorf("content_updated events: got %d, want 1", n)
	}

	recent := c.Recent.Recent(ctx, 1)
	if len(recent) != 1 || recent[0].Action != models.EditReset {
		t.Errorf("recent edits: got %+v", recent)
	}
}

func TestInitialize_ConcurrentSeedsOnce(t *testing.T) {
	ctx := context.Background()
	c, _ := newContent(t)

	var seededCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seeded, err := Initialize(ctx, c)
			if err != nil {
				t.Errorf("Initialize: %v", err)
			}
			if seeded {
				seededCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if n := seededCount.Load(); n != 1 {
		t.Errorf("seeded %d times, want 1", n)
	}
	if got := len(c.Recent.Recent(ctx, 0)); got != 0 {
		t.Errorf("seeding should not log edits, got %d", got)
	}
}
