// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncResult describes one completed refresh of a cached entity.
type SyncResult struct {
	// RunID identifies the sync run in logs.
	RunID string `json:"run_id"`
	// Entity is the refreshed entity (payees, transactions).
	Entity KnowledgeKey `json:"entity"`
	// Count is the number of records written to the cache.
	Count int `json:"count"`
	// ServerKnowledge is the knowledge value stored after the refresh.
	ServerKnowledge int64 `json:"server_knowledge"`
	// Delta reports whether only changed records were requested and merged.
	Delta     bool          `json:"delta"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}
