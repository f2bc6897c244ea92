package chatRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"HealthCoach/internal/api/chat"
	"HealthCoach/internal/entity"
	contextPkg "HealthCoach/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ChatTurnDB struct {
	ID         sql.NullString  `db:"id"`
	UserID     sql.NullString  `db:"user_id"`
	UserInput  sql.NullString  `db:"user_input"`
	IntentType sql.NullString  `db:"intent_type"`
	Confidence sql.NullFloat64 `db:"confidence"`
	Response   sql.NullString  `db:"response"`
	Matched    sql.NullBool    `db:"matched"`
	Enhanced   sql.NullBool    `db:"enhanced"`
	Feedback   sql.NullString  `db:"feedback"`
	CreatedAt  time.Time       `db:"created_at"`
}

func (r *chatTurnsRepository) CreateTurn(ctx context.Context, turn entity.ChatTurn) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          turn.ID,
		"user_id":     turn.UserID,
		"user_input":  turn.UserInput,
		"intent_type": turn.IntentType,
		"confidence":  turn.Confidence,
		"response":    turn.Response,
		"matched":     turn.Matched,
		"enhanced":    turn.Enhanced,
		"feedback":    turn.Feedback,
		"created_at":  turn.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTurn, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTurn")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating chat turn")
		return err
	}

	return nil
}

func (r *chatTurnsRepository) GetTurnByID(ctx context.Context, id string) (entity.ChatTurn, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var turn ChatTurnDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTurnByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTurnByID named query preparation err")
		return entity.ChatTurn{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&turn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetTurnByID no rows found")
			return entity.ChatTurn{}, chat.ErrTurnNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTurnByID execution err")
		return entity.ChatTurn{}, err
	}

	return r.makeTurn(turn), nil
}

func (r *chatTurnsRepository) GetTurnsByUser(ctx context.Context, userID string, limit, offset int) ([]entity.ChatTurn, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var turns []ChatTurnDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountTurnsByUser, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTurnsByUser named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTurnsByUser execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	}

	query, args, err := sqlx.Named(queryGetTurnsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTurnsByUser named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &turns, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTurnsByUser execution err")
		return nil, 0, err
	}

	result := make([]entity.ChatTurn, 0, len(turns))
	for _, turn := range turns {
		result = append(result, r.makeTurn(turn))
	}

	return result, total, nil
}

func (r *chatTurnsRepository) makeTurn(turn ChatTurnDB) entity.ChatTurn {
	return entity.ChatTurn{
		ID:         turn.ID.String,
		UserID:     turn.UserID.String,
		UserInput:  turn.UserInput.String,
		IntentType: turn.IntentType.String,
		Confidence: turn.Confidence.Float64,
		Response:   turn.Response.String,
		Matched:    turn.Matched.Bool,
		Enhanced:   turn.Enhanced.Bool,
		Feedback:   turn.Feedback.String,
		CreatedAt:  turn.CreatedAt,
	}
}
