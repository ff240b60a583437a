// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Edit actions recorded in the recent edits log.
const (
	EditCreate  = "create"
	EditUpdate  = "update"
	EditDelete  = "delete"
	EditPublish = "publish"
	EditReset   = "reset"
)

// RecentEdit is one entry of the admin activity log.
type RecentEdit struct {
	Kind   string    `json:"kind" yaml:"kind"`
	ID     string    `json:"id" yaml:"id"`
	Action string    `json:"action" yaml:"action"`
	At     time.Time `json:"at" yaml:"at"`
}
