// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"ngocms/internal/models"
)

const concurrentWriters = 200

// parallel runs fn n times concurrently and waits for all of them.
func parallel(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			fn(i)
		}(i)
	}
	wg.Wait()
}

func TestCollection_ConcurrentSavesKeepEveryRecord(t *testing.T) {
	env := newTestEnv(t)

	var failed atomic.Int32
	parallel(concurrentWriters, func(i int) {
		id := fmt.Sprintf("n%d", i)
		if _, err := env.content.News.Save(env.ctx, news(id, "Titre "+id, "عنوان", "2025-01-01")); err != nil {
			failed.Add(1)
		}
	})

	if n := failed.Load(); n != 0 {
		t.Fatalf("%d saves failed", n)
	}
	if got := len(env.content.News.All(env.ctx)); got != concurrentWriters {
		t.Errorf("news stored: got %d, want %d", got, concurrentWriters)
	}
}

func TestCollection_ConcurrentDeletes(t *testing.T) {
	env := newTestEnv(t)
	items := make([]models.NewsItem, concurrentWriters)
	for i := range items {
		items[i] = news(fmt.Sprintf("n%d", i), "Titre", "عنوان", "2025-01-01")
	}
	if err := env.content.News.Replace(env.ctx, items); err != nil {
		t.Fatal(err)
	}

	parallel(concurrentWriters/2, func(i int) {
		if ok, err := env.content.News.Delete(env.ctx, fmt.Sprintf("n%d", i)); err != nil || !ok {
			t.Errorf("Delete n%d: ok=%v err=%v", i, ok, err)
		}
	})

	if got := len(env.content.News.All(env.ctx)); got != concurrentWriters/2 {
		t.Errorf("news left: got %d, want %d", got, concurrentWriters/2)
	}
}

func TestPages_ConcurrentSectionUpserts(t *testing.T) {
	env := newTestEnv(t)

	parallel(concurrentWriters, func(i int) {
		sec := models.Section{ID: fmt.Sprintf("s%d", i), Title: models.T("Section", "قسم")}
		if _, err := env.content.Pages.UpsertSection(env.ctx, "home", sec); err != nil {
			t.Errorf("UpsertSection s%d: %v", i, err)
		}
	})

	p, ok := env.content.Pages.Live(env.ctx, "home")
	if !ok {
		t.Fatal("page missing")
	}
	if len(p.Sections) != concurrentWriters {
		t.Errorf("sections: got %d, want %d", len(p.Sections), concurrentWriters)
	}
	if p.Version != concurrentWriters {
		t.Errorf("version: got %d, want %d", p.Version, concurrentWriters)
	}
}

func TestPages_ConcurrentConditionalSavesOneWins(t *testing.T) {
	env := newTestEnv(t)
	live, err := env.content.Pages.SaveLive(env.ctx, threeSectionPage())
	if err != nil {
		t.Fatal(err)
	}

	var won, conflicts atomic.Int32
	parallel(50, func(i int) {
		edit := live.Clone()
		edit.Title = models.T(fmt.Sprintf("Accueil %d", i), "الرئيسية")
		_, err := env.content.Pages.SaveDraftIfVersion(env.ctx, edit, live.Version)
		switch {
		case err == nil:
			won.Add(1)
		case errors.Is(err, ErrVersionConflict):
			conflicts.Add(1)
		default:
			t.Errorf("save %d: %v", i, err)
		}
	})

	if won.Load() != 1 || conflicts.Load() != 49 {
		t.Errorf("won=%d conflicts=%d, want 1 and 49", won.Load(), conflicts.Load())
	}
}

func TestStructure_ConcurrentMenuItems(t *testing.T) {
	env := newTestEnv(t)

	parallel(concurrentWriters, func(i int) {
		item := models.MenuItem{ID: fmt.Sprintf("m%d", i), Href: fmt.Sprintf("/p%d", i)}
		if _, err := env.content.Structure.SaveMenuItem(env.ctx, item); err != nil {
			t.Errorf("SaveMenuItem m%d: %v", i, err)
		}
	})

	ws, _ := env.content.Structure.Get(env.ctx)
	if len(ws.MainMenu) != concurrentWriters {
		t.Errorf("menu items: got %d, want %d", len(ws.MainMenu), concurrentWriters)
	}
}
