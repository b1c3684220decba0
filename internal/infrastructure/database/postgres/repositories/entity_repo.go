// Package repositories implements the domain repository interfaces over
// PostgreSQL.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/sentineldata/riskintel/internal/domain/entity"
	"github.com/sentineldata/riskintel/internal/infrastructure/monitoring/logging"
	"github.com/sentineldata/riskintel/pkg/errors"
)

// Querier is the subset of pgxpool.Pool the repository needs; narrowed for
// substitution in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EntityRepository loads entity profiles from the relational store.  The
// profile is spread over seven tables; GetByID assembles them into one
// read-only record.  Event dates are stored as the raw upstream strings and
// parsed here, so a malformed date degrades that event to date-less instead
// of failing the load.
type EntityRepository struct {
	db     Querier
	logger logging.Logger
}

// NewEntityRepository builds the repository.
func NewEntityRepository(db Querier, log logging.Logger) *EntityRepository {
	return &EntityRepository{db: db, logger: log}
}

var _ entity.Repository = (*EntityRepository)(nil)

const (
	queryEntityExists = `SELECT entity_id FROM entities WHERE entity_id = $1`

	queryEvents = `
		SELECT category_code, COALESCE(sub_category_code, ''), COALESCE(event_date, ''), COALESCE(description, '')
		FROM entity_events WHERE entity_id = $1 ORDER BY id`

	queryAttributes = `
		SELECT code_type, raw_value
		FROM entity_attributes WHERE entity_id = $1 ORDER BY id`

	queryAddresses = `
		SELECT COALESCE(country, ''), COALESCE(city, ''), COALESCE(address_type, '')
		FROM entity_addresses WHERE entity_id = $1 ORDER BY id`

	queryRelationships = `
		SELECT relationship_type, COALESCE(counterpart_name, ''), COALESCE(direction, '')
		FROM entity_relationships WHERE entity_id = $1 ORDER BY id`

	queryAliases = `
		SELECT alias FROM entity_aliases WHERE entity_id = $1 ORDER BY id`

	queryIdentifications = `
		SELECT COALESCE(country, ''), COALESCE(doc_type, ''), COALESCE(doc_number, '')
		FROM entity_identifications WHERE entity_id = $1 ORDER BY id`
)

// GetByID assembles the full profile snapshot for an entity.
func (r *EntityRepository) GetByID(ctx context.Context, entityID string) (*entity.EntityRecord, error) {
	var id string
	if err := r.db.QueryRow(ctx, queryEntityExists, entityID).Scan(&id); err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New(errors.ErrCodeEntityNotFound, "entity not found").WithDetail(entityID)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to look up entity")
	}

	rec := &entity.EntityRecord{ID: id}

	if err := r.loadEvents(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadAttributes(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadAddresses(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadRelationships(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadAliases(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadIdentifications(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *EntityRepository) loadEvents(ctx context.Context, rec *entity.EntityRecord) error {
	rows, err := r.db.Query(ctx, queryEvents, rec.ID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load events")
	}
	defer rows.Close()

	for rows.Next() {
		var category, sub, rawDate, description string
		if err := rows.Scan(&category, &sub, &rawDate, &description); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan event row")
		}
		rec.Events = append(rec.Events, buildEvent(category, sub, rawDate, description))
	}
	return wrapRowsErr(rows.Err(), "events")
}

// buildEvent maps one raw event row; an unparsable date yields a date-less
// event rather than an error.
func buildEvent(category, sub, rawDate, description string) entity.Event {
	e := entity.Event{
		CategoryCode:    category,
		SubCategoryCode: sub,
		Description:     description,
	}
	if d, ok := entity.ParseEventDate(rawDate); ok {
		e.Date = &d
	}
	return e
}

func (r *EntityRepository) loadAttributes(ctx context.Context, rec *entity.EntityRecord) error {
	rows, err := r.db.Query(ctx, queryAttributes, rec.ID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load attributes")
	}
	defer rows.Close()

	for rows.Next() {
		var tag entity.AttributeTag
		if err := rows.Scan(&tag.CodeType, &tag.RawValue); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan attribute row")
		}
		rec.Attributes = append(rec.Attributes, tag)
	}
	return wrapRowsErr(rows.Err(), "attributes")
}

func (r *EntityRepository) loadAddresses(ctx context.Context, rec *entity.EntityRecord) error {
	rows, err := r.db.Query(ctx, queryAddresses, rec.ID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load addresses")
	}
	defer rows.Close()

	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.Country, &a.City, &a.Type); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan address row")
		}
		rec.Addresses = append(rec.Addresses, a)
	}
	return wrapRowsErr(rows.Err(), "addresses")
}

func (r *EntityRepository) loadRelationships(ctx context.Context, rec *entity.EntityRecord) error {
	rows, err := r.db.Query(ctx, queryRelationships, rec.ID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load relationships")
	}
	defer rows.Close()

	for rows.Next() {
		var rel entity.Relationship
		if err := rows.Scan(&rel.Type, &rel.CounterpartName, &rel.Direction); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan relationship row")
		}
		rec.Relationships = append(rec.Relationships, rel)
	}
	return wrapRowsErr(rows.Err(), "relationships")
}

func (r *EntityRepository) loadAliases(ctx context.Context, rec *entity.EntityRecord) error {
	rows, err := r.db.Query(ctx, queryAliases, rec.ID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load aliases")
	}
	defer rows.Close()

	for rows.Next() {
		var alias string
		if err := rows.Scan(&alias); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan alias row")
		}
		rec.Aliases = append(rec.Aliases, alias)
	}
	return wrapRowsErr(rows.Err(), "aliases")
}

func (r *EntityRepository) loadIdentifications(ctx context.Context, rec *entity.EntityRecord) error {
	rows, err := r.db.Query(ctx, queryIdentifications, rec.ID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load identifications")
	}
	defer rows.Close()

	for rows.Next() {
		var doc entity.IdentityDocument
		if err := rows.Scan(&doc.Country, &doc.Type, &doc.Number); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan identification row")
		}
		rec.Identifications = append(rec.Identifications, doc)
	}
	return wrapRowsErr(rows.Err(), "identifications")
}

func wrapRowsErr(err error, table string) error {
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "row iteration failed for "+table)
	}
	return nil
}
