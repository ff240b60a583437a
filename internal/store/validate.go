package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ngocms/internal/models"
)

// Validation limits for content fields.
const (
	maxIDLen      = 200
	maxTitleLen   = 300
	maxContentLen = 100_000
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func validateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("%s id is required", kind)
	}
	if utf8.RuneCountInString(id) > maxIDLen {
		return invalid("%s id is too long (max %d characters)", kind, maxIDLen)
	}
	if strings.ContainsAny(id, "/ \t\n") {
		return invalid("%s id %q contains invalid characters", kind, id)
	}
	return nil
}

func validateText(field string, t models.Text, limit int) error {
	if utf8.RuneCountInString(t.FR) > limit || utf8.RuneCountInString(t.AR) > limit {
		return invalid("%s is too long (max %d characters)", field, limit)
	}
	return nil
}

// requireText rejects a bilingual field with a blank translation.
func requireText(field string, t models.Text) error {
	if !t.Complete() {
		return invalid("%s is required in both French and Arabic", field)
	}
	return nil
}

// ValidatePage checks a page and its sections. Titles may be blank while
// a draft is in progress; section ids must be present and unique.
func ValidatePage(p *models.Page) error {
	if err := validateID("page", p.ID); err != nil {
		return err
	}
	if err := validateText("page title", p.Title, maxTitleLen); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(p.Sections))
	for i := range p.Sections {
		if err := ValidateSection(&p.Sections[i]); err != nil {
			return err
		}
		if _, dup := seen[p.Sections[i].ID]; dup {
			return invalid("duplicate section id %q in page %q", p.Sections[i].ID, p.ID)
		}
		seen[p.Sections[i].ID] = struct{}{}
	}
	return nil
}

// ValidateSection checks a single section.
func ValidateSection(s *models.Section) error {
	if err := validateID("section", s.ID); err != nil {
		return err
	}
	if err := validateText("section title", s.Title, maxTitleLen); err != nil {
		return err
	}
	return validateText("section content", s.Content, maxContentLen)
}

// ValidateNews checks a news item. Title is required in both languages.
func ValidateNews(n *models.NewsItem) error {
	if err := requireText("news title", n.Title); err != nil {
		return err
	}
	if err := validateText("news title", n.Title, maxTitleLen); err != nil {
		return err
	}
	return validateText("news content", n.Content, maxContentLen)
}

// ValidateResource checks a resource.
func ValidateResource(r *models.Resource) error {
	if err := requireText("resource title", r.Title); err != nil {
		return err
	}
	return validateText("resource title", r.Title, maxTitleLen)
}

// ValidateMedia checks a media library entry.
func ValidateMedia(m *models.MediaItem) error {
	if strings.TrimSpace(m.URL) == "" {
		return invalid("media url is required")
	}
	if m.Type == "" {
		m.Type = models.MediaOther
	}
	return nil
}

// ValidateGlobal checks a global content entry.
func ValidateGlobal(g *models.GlobalContent) error {
	if strings.TrimSpace(g.Key) == "" {
		return invalid("global content key is required")
	}
	return validateText("global content text", g.Text, maxContentLen)
}

// ValidateStructure checks that menu items, footer sections, and footer
// links carry unique ids.
func ValidateStructure(ws *models.WebsiteStructure) error {
	seen := make(map[string]struct{})
	for _, m := range ws.MainMenu {
		if err := validateID("menu item", m.ID); err != nil {
			return err
		}
		if _, dup := seen[m.ID]; dup {
			return invalid("duplicate menu item id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	seen = make(map[string]struct{})
	for _, f := range ws.Footer {
		if err := validateID("footer section", f.ID); err != nil {
			return err
		}
		if _, dup := seen[f.ID]; dup {
			return invalid("duplicate footer section id %q", f.ID)
		}
		seen[f.ID] = struct{}{}

		links := make(map[string]struct{}, len(f.Links))
		for _, l := range f.Links {
			if err := validateID("footer link", l.ID); err != nil {
				return err
			}
			if _, dup := links[l.ID]; dup {
				return invalid("duplicate footer link id %q in section %q", l.ID, f.ID)
			}
			links[l.ID] = struct{}{}
		}
	}
	return nil
}
