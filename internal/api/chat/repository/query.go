package chatRepository

const (
	queryCreateTurn = `
		INSERT INTO chat_turns (
			id,
			user_id,
			user_input,
			intent_type,
			confidence,
			response,
			matched,
			enhanced,
			feedback,
			created_at
		) VALUES (
			:id,
			:user_id,
			:user_input,
			:intent_type,
			:confidence,
			:response,
			:matched,
			:enhanced,
			:feedback,
			:created_at
		)
	`

	queryGetTurnByID = `
		SELECT
			id,
			user_id,
			user_input,
			intent_type,
			confidence,
			response,
			matched,
			enhanced,
			feedback,
			created_at
		FROM chat_turns
		WHERE id = :id
	`

	queryGetTurnsByUser = `
		SELECT
			id,
			user_id,
			user_input,
			intent_type,
			confidence,
			response,
			matched,
			enhanced,
			feedback,
			created_at
		FROM chat_turns
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountTurnsByUser = `
		SELECT COUNT(*)
		FROM chat_turns
		WHERE user_id = :user_id
	`
)
