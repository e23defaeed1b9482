package services

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/rtharindu/echannaling-admin/models"
)

// Stats is the status breakdown reported for doctors and hospitals.
type Stats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}

type count struct {
	dest  *int64
	where []interface{}
}

func countOf(dest *int64, where ...interface{}) count {
	return count{dest: dest, where: where}
}

// countConcurrently runs one COUNT per entry in parallel. The results are
// independent snapshots, not one consistent view.
func countConcurrently(ctx context.Context, gdb *gorm.DB, model interface{}, counts ...count) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		c := c
		g.Go(func() error {
			q := gdb.WithContext(gctx).Model(model)
			if len(c.where) > 0 {
				q = q.Where(c.where[0], c.where[1:]...)
			}
			return q.Count(c.dest).Error
		})
	}
	return g.Wait()
}

func approvalStats(ctx context.Context, gdb *gorm.DB, model interface{}) (Stats, error) {
	var s Stats
	err := countConcurrently(ctx, gdb, model,
		countOf(&s.Total),
		countOf(&s.Active, "is_active = ?", true),
		countOf(&s.Inactive, "is_active = ?", false),
		countOf(&s.Approved, "status = ?", models.StatusApproved),
		countOf(&s.Pending, "status = ?", models.StatusPending),
	)
	if err != nil {
		return Stats{}, err
	}
	return s, nil
}
