// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// GroupSettings is the predicate function for groupsettings builders.
type GroupSettings func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// SummaryRecord is the predicate function for summaryrecord builders.
type SummaryRecord func(*sql.Selector)
