package main

import (
	"github.com/librarydesk/lendingdesk/eventstore/memengine"
	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/features/command/addbook"
	"github.com/librarydesk/lendingdesk/lending/features/command/addmember"
	"github.com/librarydesk/lendingdesk/lending/features/command/checkoutbook"
	"github.com/librarydesk/lendingdesk/lending/features/command/returnbook"
	"github.com/librarydesk/lendingdesk/lending/features/query/activitylog"
	"github.com/librarydesk/lendingdesk/lending/features/query/availablebooks"
	"github.com/librarydesk/lendingdesk/lending/features/query/searchbooks"
	"github.com/librarydesk/lendingdesk/lending/shell"
	"github.com/librarydesk/lendingdesk/lending/shell/observable"
)

// desk holds the library, its session journal and the instrumented handlers the menu calls.
type desk struct {
	library *core.Library
	journal memengine.EventStore

	addBook    shell.CommandHandler[addbook.Command]
	addMember  shell.CommandHandler[addmember.Command]
	checkout   shell.CommandHandler[checkoutbook.Command]
	returnBook shell.CommandHandler[returnbook.Command]

	availableBooks shell.QueryHandler[availablebooks.Query, availablebooks.AvailableBooks]
	searchBooks    shell.QueryHandler[searchbooks.Query, searchbooks.SearchResults]
	activityLog    shell.QueryHandler[activitylog.Query, activitylog.ActivityLog]
}

func newDesk(library *core.Library, tel telemetry) (*desk, error) {
	journal, err := memengine.NewEventStore(journalOptions(tel)...)
	if err != nil {
		return nil, err
	}

	d := &desk{
		library: library,
		journal: journal,
	}

	if d.addBook, err = observable.NewCommandWrapper[addbook.Command](
		addbook.NewCommandHandler(library, journal),
		commandOptions[addbook.Command](tel)...,
	); err != nil {
		return nil, err
	}

	if d.addMember, err = observable.NewCommandWrapper[addmember.Command](
		addmember.NewCommandHandler(library, journal),
		commandOptions[addmember.Command](tel)...,
	); err != nil {
		return nil, err
	}

	if d.checkout, err = observable.NewCommandWrapper[checkoutbook.Command](
		checkoutbook.NewCommandHandler(library, journal),
		commandOptions[checkoutbook.Command](tel)...,
	); err != nil {
		return nil, err
	}

	if d.returnBook, err = observable.NewCommandWrapper[returnbook.Command](
		returnbook.NewCommandHandler(library, journal),
		commandOptions[returnbook.Command](tel)...,
	); err != nil {
		return nil, err
	}

	if d.availableBooks, err = observable.NewQueryWrapper[availablebooks.Query, availablebooks.AvailableBooks](
		availablebooks.NewQueryHandler(library),
		queryOptions[availablebooks.Query, availablebooks.AvailableBooks](tel)...,
	); err != nil {
		return nil, err
	}

	if d.searchBooks, err = observable.NewQueryWrapper[searchbooks.Query, searchbooks.SearchResults](
		searchbooks.NewQueryHandler(library),
		queryOptions[searchbooks.Query, searchbooks.SearchResults](tel)...,
	); err != nil {
		return nil, err
	}

	if d.activityLog, err = observable.NewQueryWrapper[activitylog.Query, activitylog.ActivityLog](
		activitylog.NewQueryHandler(journal),
		queryOptions[activitylog.Query, activitylog.ActivityLog](tel)...,
	); err != nil {
		return nil, err
	}

	return d, nil
}

func journalOptions(tel telemetry) []memengine.Option {
	var opts []memengine.Option

	if tel.journalLogger != nil {
		opts = append(opts, memengine.WithContextualLogger(tel.journalLogger))
	}
	if tel.metricsCollector != nil {
		opts = append(opts, memengine.WithMetrics(tel.metricsCollector))
	}
	if tel.tracingCollector != nil {
		opts = append(opts, memengine.WithTracing(tel.tracingCollector))
	}

	return opts
}

func commandOptions[C shell.Command](tel telemetry) []observable.CommandOption[C] {
	var opts []observable.CommandOption[C]

	if tel.contextualLogger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C](tel.contextualLogger))
	}
	if tel.metricsCollector != nil {
		opts = append(opts, observable.WithCommandMetrics[C](tel.metricsCollector))
	}
	if tel.tracingCollector != nil {
		opts = append(opts, observable.WithCommandTracing[C](tel.tracingCollector))
	}

	return opts
}

func queryOptions[Q shell.Query, R shell.QueryResult](tel telemetry) []observable.QueryOption[Q, R] {
	var opts []observable.QueryOption[Q, R]

	if tel.contextualLogger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](tel.contextualLogger))
	}
	if tel.metricsCollector != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](tel.metricsCollector))
	}
	if tel.tracingCollector != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](tel.tracingCollector))
	}

	return opts
}
