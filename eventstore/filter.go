package eventstore

import (
	"slices"
	"strings"
)

type FilterEventTypeString = string
type FilterKeyString = string
type FilterValString = string

/***** Filter *****/

// Filter selects journal events. Its items are OR-ed: an event matches the Filter if it matches any item.
// A Filter without items matches every event.
//
// Filters are built with BuildEventFilter, never constructed directly.
type Filter struct {
	items []FilterItem
}

// Items returns the filter items.
func (f Filter) Items() []FilterItem {
	return f.items
}

// Matches reports whether an event with the given type and payload fields is selected by the Filter.
// payloadField looks up a top-level payload field and reports whether it exists.
func (f Filter) Matches(eventType string, payloadField func(key string) (string, bool)) bool {
	if len(f.items) == 0 {
		return true
	}

	for _, item := range f.items {
		if item.matches(eventType, payloadField) {
			return true
		}
	}

	return false
}

/***** FilterItem *****/

// FilterItem is one OR-branch of a Filter.
// An event matches when its type is one of EventTypes (if any are given) and
// any, or with AllPredicatesMustMatch all, of the Predicates hold (if any are given).
type FilterItem struct {
	eventTypes             []FilterEventTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

// EventTypes returns the sorted, deduplicated event types of the item.
func (fi FilterItem) EventTypes() []FilterEventTypeString {
	return fi.eventTypes
}

// Predicates returns the sorted, deduplicated predicates of the item.
func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

// AllPredicatesMustMatch reports whether all predicates must hold instead of any.
func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

func (fi FilterItem) matches(eventType string, payloadField func(key string) (string, bool)) bool {
	if len(fi.eventTypes) > 0 && !slices.Contains(fi.eventTypes, eventType) {
		return false
	}

	if len(fi.predicates) == 0 {
		return true
	}

	for _, predicate := range fi.predicates {
		val, ok := payloadField(predicate.key)
		holds := ok && val == predicate.val

		if holds && !fi.allPredicatesMustMatch {
			return true
		}

		if !holds && fi.allPredicatesMustMatch {
			return false
		}
	}

	return fi.allPredicatesMustMatch
}

/***** FilterPredicate *****/

// FilterPredicate requires the payload field key to equal val.
type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

// P is a short factory for FilterPredicate.
func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

// Key returns the payload field name.
func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

// Val returns the expected payload field value.
func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

/***** FilterBuilder *****/

// FilterBuilder is the entry point of the fluent filter construction.
type FilterBuilder interface {
	// Matching starts a new filter item.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyEvent finalizes a Filter without items, which matches every event.
	MatchingAnyEvent() Filter
}

// EmptyFilterItemBuilder starts a filter item with event types or predicates.
type EmptyFilterItemBuilder interface {
	AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) FilterItemBuilderLackingPredicates
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
}

// FilterItemBuilderLackingPredicates continues an item that has event types.
type FilterItemBuilderLackingPredicates interface {
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

// FilterItemBuilderLackingEventTypes continues an item that has predicates.
type FilterItemBuilderLackingEventTypes interface {
	AndAnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) CompletedFilterItemBuilder
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

// CompletedFilterItemBuilder finishes an item with both event types and predicates.
type CompletedFilterItemBuilder interface {
	OrMatching() EmptyFilterItemBuilder
	Finalize() Filter
}

type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
}

// BuildEventFilter creates a FilterBuilder.
//
//	eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf("BookCheckedOut", "BookReturned").
//		AndAnyPredicateOf(eventstore.P("MemberID", "M001")).
//		OrMatching().
//		AnyEventTypeOf("MemberRegistered").
//		AndAnyPredicateOf(eventstore.P("MemberID", "M001")).
//		Finalize()
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}

	return fb
}

func (fb filterBuilder) AnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) FilterItemBuilderLackingPredicates {

	fb.currentFilterItem.eventTypes = append(
		slices.Clone(fb.currentFilterItem.eventTypes),
		fb.sanitizeEventTypes(eventType, eventTypes...)...,
	)

	return fb
}

func (fb filterBuilder) AndAnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) CompletedFilterItemBuilder {

	return fb.AnyEventTypeOf(eventType, eventTypes...)
}

func (fb filterBuilder) sanitizeEventTypes(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) []FilterEventTypeString {

	allEventTypes := append([]FilterEventTypeString{eventType}, eventTypes...)
	allEventTypes = slices.DeleteFunc(allEventTypes, func(e FilterEventTypeString) bool { return e == "" })
	slices.Sort(allEventTypes)
	allEventTypes = slices.Compact(allEventTypes)

	return slices.Clip(allEventTypes)
}

func (fb filterBuilder) AnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.currentFilterItem.predicates = append(
		slices.Clone(fb.currentFilterItem.predicates),
		fb.sanitizePredicates(predicate, predicates...)...,
	)

	return fb
}

func (fb filterBuilder) AndAnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AnyPredicateOf(predicate, predicates...)
}

func (fb filterBuilder) AllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.currentFilterItem.allPredicatesMustMatch = true

	return fb.AnyPredicateOf(predicate, predicates...)
}

func (fb filterBuilder) AndAllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AllPredicatesOf(predicate, predicates...)
}

func (fb filterBuilder) sanitizePredicates(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) []FilterPredicate {

	allPredicates := append([]FilterPredicate{predicate}, predicates...)
	allPredicates = slices.DeleteFunc(allPredicates, func(e FilterPredicate) bool { return e.key == "" || e.val == "" })
	slices.SortFunc(allPredicates, func(a, b FilterPredicate) int {
		if byKey := strings.Compare(a.key, b.key); byKey != 0 {
			return byKey
		}

		return strings.Compare(a.val, b.val)
	})
	allPredicates = slices.Compact(allPredicates)

	return slices.Clip(allPredicates)
}

func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

func (fb filterBuilder) MatchingAnyEvent() Filter {
	return fb.filter
}

func (fb filterBuilder) Finalize() Filter {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.currentFilterItem)

	return fb.filter
}
