// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import "github.com/MKhiriev/go-ews-sync/models"

type changeState int

const (
	stateCreated changeState = iota + 1
	stateUpdated
	stateDeleted
)

// changeLog folds the events of every page of one sync session into a
// single state per id. Ids keep the order in which they were first seen.
//
// A create or update of an id that is already created or updated keeps the
// earlier classification, so create-then-update stays created. A delete
// always wins, which also drops any pending update for the id.
type changeLog struct {
	order  []string
	states map[string]changeState

	flagOrder []string
	flags     map[string]bool
}

func newChangeLog() *changeLog {
	return &changeLog{
		states: make(map[string]changeState),
		flags:  make(map[string]bool),
	}
}

func (l *changeLog) touch(id string) {
	if _, seen := l.states[id]; !seen {
		l.order = append(l.order, id)
	}
}

func (l *changeLog) upsert(id string, kind changeState) {
	l.touch(id)
	switch l.states[id] {
	case stateCreated, stateUpdated:
		return
	default:
		l.states[id] = kind
	}
}

func (l *changeLog) create(id string) { l.upsert(id, stateCreated) }
func (l *changeLog) update(id string) { l.upsert(id, stateUpdated) }

func (l *changeLog) remove(id string) {
	l.touch(id)
	l.states[id] = stateDeleted
}

// setReadFlag keeps the latest read state per id.
func (l *changeLog) setReadFlag(id string, isRead bool) {
	if _, seen := l.flags[id]; !seen {
		l.flagOrder = append(l.flagOrder, id)
	}
	l.flags[id] = isRead
}

func (l *changeLog) partition() (created, updated, deleted []string) {
	created, updated, deleted = []string{}, []string{}, []string{}
	for _, id := range l.order {
		switch l.states[id] {
		case stateCreated:
			created = append(created, id)
		case stateUpdated:
			updated = append(updated, id)
		case stateDeleted:
			deleted = append(deleted, id)
		}
	}
	return created, updated, deleted
}

func (l *changeLog) readFlags() []models.ReadFlagChange {
	out := make([]models.ReadFlagChange, 0, len(l.flagOrder))
	for _, id := range l.flagOrder {
		out = append(out, models.ReadFlagChange{ID: id, IsRead: l.flags[id]})
	}
	return out
}
