package postgres

import (
	"context"
	"database/sql"

	"baby-tracker/internal/domain/logs"
)

type LogsRepo struct {
	db *sql.DB
}

func NewLogsRepo(db *sql.DB) *LogsRepo {
	return &LogsRepo{db: db}
}

// --- Feedings ---

func (r *LogsRepo) ListFeedings(ctx context.Context, babyID int64) ([]logs.Feeding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, baby_id, type, amount, duration, side, time
		FROM feedings
		WHERE baby_id = $1
		ORDER BY time DESC
	`, babyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]logs.Feeding, 0)
	for rows.Next() {
		var f logs.Feeding
		var typ, side string
		var amount, duration sql.NullInt64
		if err := rows.Scan(&f.ID, &f.BabyID, &typ, &amount, &duration, &side, &f.Time); err != nil {
			return nil, err
		}
		f.Type = logs.FeedingType(typ)
		f.Side = logs.Side(side)
		f.Amount = nullInt(amount)
		f.Duration = nullInt(duration)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *LogsRepo) CreateFeeding(ctx context.Context, f logs.Feeding) (logs.Feeding, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO feedings (baby_id, type, amount, duration, side, time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		f.BabyID,
		string(f.Type),
		toNullInt(f.Amount),
		toNullInt(f.Duration),
		string(f.Side),
		f.Time,
	).Scan(&f.ID)
	if err != nil {
		return logs.Feeding{}, err
	}
	return f, nil
}

func (r *LogsRepo) DeleteFeeding(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM feedings WHERE id = $1`, id)
	return err
}

// --- Sleep logs ---

func (r *LogsRepo) ListSleepLogs(ctx context.Context, babyID int64) ([]logs.SleepLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, baby_id, start_time, end_time, duration
		FROM sleep_logs
		WHERE baby_id = $1
		ORDER BY start_time DESC
	`, babyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]logs.SleepLog, 0)
	for rows.Next() {
		var s logs.SleepLog
		var end sql.NullTime
		var duration sql.NullInt64
		if err := rows.Scan(&s.ID, &s.BabyID, &s.StartTime, &end, &duration); err != nil {
			return nil, err
		}
		if end.Valid {
			t := end.Time
			s.EndTime = &t
		}
		s.Duration = nullInt(duration)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *LogsRepo) CreateSleepLog(ctx context.Context, s logs.SleepLog) (logs.SleepLog, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sleep_logs (baby_id, start_time, end_time, duration)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		s.BabyID,
		s.StartTime,
		toNullTime(s.EndTime),
		toNullInt(s.Duration),
	).Scan(&s.ID)
	if err != nil {
		return logs.SleepLog{}, err
	}
	return s, nil
}

func (r *LogsRepo) DeleteSleepLog(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sleep_logs WHERE id = $1`, id)
	return err
}

// --- Diaper logs ---

func (r *LogsRepo) ListDiaperLogs(ctx context.Context, babyID int64) ([]logs.DiaperLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, baby_id, type, time, notes
		FROM diaper_logs
		WHERE baby_id = $1
		ORDER BY time DESC
	`, babyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]logs.DiaperLog, 0)
	for rows.Next() {
		var d logs.DiaperLog
		var typ string
		if err := rows.Scan(&d.ID, &d.BabyID, &typ, &d.Time, &d.Notes); err != nil {
			return nil, err
		}
		d.Type = logs.DiaperType(typ)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *LogsRepo) CreateDiaperLog(ctx context.Context, d logs.DiaperLog) (logs.DiaperLog, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO diaper_logs (baby_id, type, time, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		d.BabyID,
		string(d.Type),
		d.Time,
		d.Notes,
	).Scan(&d.ID)
	if err != nil {
		return logs.DiaperLog{}, err
	}
	return d, nil
}

func (r *LogsRepo) DeleteDiaperLog(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM diaper_logs WHERE id = $1`, id)
	return err
}

// --- Growth logs ---

func (r *LogsRepo) ListGrowthLogs(ctx context.Context, babyID int64) ([]logs.GrowthLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, baby_id, height, weight, head_circumference, date
		FROM growth_logs
		WHERE baby_id = $1
		ORDER BY date DESC
	`, babyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]logs.GrowthLog, 0)
	for rows.Next() {
		var g logs.GrowthLog
		var h, w, hc sql.NullFloat64
		if err := rows.Scan(&g.ID, &g.BabyID, &h, &w, &hc, &g.Date); err != nil {
			return nil, err
		}
		g.Height = nullFloat(h)
		g.Weight = nullFloat(w)
		g.HeadCircumference = nullFloat(hc)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *LogsRepo) CreateGrowthLog(ctx context.Context, g logs.GrowthLog) (logs.GrowthLog, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO growth_logs (baby_id, height, weight, head_circumference, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		g.BabyID,
		toNullFloat(g.Height),
		toNullFloat(g.Weight),
		toNullFloat(g.HeadCircumference),
		g.Date,
	).Scan(&g.ID)
	if err != nil {
		return logs.GrowthLog{}, err
	}
	return g, nil
}

func (r *LogsRepo) DeleteGrowthLog(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM growth_logs WHERE id = $1`, id)
	return err
}

// --- Memories ---

func (r *LogsRepo) ListMemories(ctx context.Context, babyID int64) ([]logs.Memory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, baby_id, title, description, date, emoji
		FROM memories
		WHERE baby_id = $1
		ORDER BY date DESC
	`, babyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]logs.Memory, 0)
	for rows.Next() {
		var m logs.Memory
		if err := rows.Scan(&m.ID, &m.BabyID, &m.Title, &m.Description, &m.Date, &m.Emoji); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *LogsRepo) CreateMemory(ctx context.Context, m logs.Memory) (logs.Memory, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO memories (baby_id, title, description, date, emoji)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		m.BabyID,
		m.Title,
		m.Description,
		m.Date,
		m.Emoji,
	).Scan(&m.ID)
	if err != nil {
		return logs.Memory{}, err
	}
	return m, nil
}

func (r *LogsRepo) DeleteMemory(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM memories WHERE id = $1`, id)
	return err
}

// --- helpers null ---

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func toNullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func toNullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}
