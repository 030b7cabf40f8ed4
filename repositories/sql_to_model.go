package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/helixcrm/helix-backend/models"
)

func ExecBuilder(ctx context.Context, exec Executor, query squirrel.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	tag, err := exec.Exec(ctx, sql, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error executing sql query")
	}
	return tag.RowsAffected(), nil
}

func ForEachRow(ctx context.Context, exec Executor, query squirrel.Sqlizer,
	fn func(row pgx.CollectableRow) error,
) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return errors.Wrap(err, "error executing sql query")
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}

	return errors.Wrap(rows.Err(), "error iterating over rows")
}

// SqlToListOfModels executes the query and adapts every row into a model.
func SqlToListOfModels[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	out := make([]Model, 0)
	err := ForEachRow(ctx, exec, query, func(row pgx.CollectableRow) error {
		dbModel, err := pgx.RowToStructByName[DBModel](row)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", dbModel))
		}
		model, err := adapter(dbModel)
		if err != nil {
			return err
		}
		out = append(out, model)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SqlToOptionalModel executes the query and adapts the first row into a
// model. Returns nil if the query matched nothing.
func SqlToOptionalModel[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	results, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}

	numberOfResults := len(results)
	if numberOfResults == 0 {
		return nil, nil
	}
	if numberOfResults > 1 {
		return nil, errors.New(fmt.Sprintf("expected at most 1 row, got %d", numberOfResults))
	}
	return &results[0], nil
}

// SqlToModel executes the query and adapts the first row into a model.
// Returns a NotFoundError if the query matched nothing.
func SqlToModel[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	if err != nil {
		var zero Model
		return zero, err
	}
	if model == nil {
		var zero Model
		return zero, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zero))
	}
	return *model, nil
}
