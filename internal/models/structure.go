// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// MenuItem is one entry of the main navigation menu.
type MenuItem struct {
	ID    string `json:"id" yaml:"id"`
	Title Text   `json:"title" yaml:"title"`
	Href  string `json:"href" yaml:"href"`
}

// FooterLink is a link inside a footer section.
type FooterLink struct {
	ID    string `json:"id" yaml:"id"`
	Title Text   `json:"title" yaml:"title"`
	Href  string `json:"href" yaml:"href"`
}

// FooterSection is a titled footer column with optional text and links.
type FooterSection struct {
	ID      string       `json:"id" yaml:"id"`
	Title   Text         `json:"title" yaml:"title"`
	Content *Text        `json:"content,omitempty" yaml:"content,omitempty"`
	Links   []FooterLink `json:"links,omitempty" yaml:"links,omitempty"`
}

// WebsiteStructure holds the navigation shared by every page. Item order
// is array order.
type WebsiteStructure struct {
	MainMenu []MenuItem      `json:"mainMenu" yaml:"mainMenu"`
	Footer   []FooterSection `json:"footer" yaml:"footer"`
}
