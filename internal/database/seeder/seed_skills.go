package seeder

import (
	"context"
	"fmt"

	"resumatch/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "python", Category: "Programming Language"},
		{Name: "java", Category: "Programming Language"},
		{Name: "c++", Category: "Programming Language"},
		{Name: "c#", Category: "Programming Language"},
		{Name: "javascript", Category: "Programming Language"},
		{Name: "typescript", Category: "Programming Language"},
		{Name: "html", Category: "Frontend"},
		{Name: "css", Category: "Frontend"},
		{Name: "react", Category: "Frontend"},
		{Name: "angular", Category: "Frontend"},
		{Name: "vue", Category: "Frontend"},
		{Name: "sql", Category: "Database"},
		{Name: "mysql", Category: "Database"},
		{Name: "postgresql", Category: "Database"},
		{Name: "mongodb", Category: "Database"},
		{Name: "redis", Category: "Database"},
		{Name: "aws", Category: "Cloud"},
		{Name: "azure", Category: "Cloud"},
		{Name: "gcp", Category: "Cloud"},
		{Name: "docker", Category: "DevOps"},
		{Name: "kubernetes", Category: "DevOps"},
		{Name: "git", Category: "DevOps"},
		{Name: "flask", Category: "Framework"},
		{Name: "django", Category: "Framework"},
		{Name: "fastapi", Category: "Framework"},
		{Name: "spring", Category: "Framework"},
		{Name: "spring boot", Category: "Framework"},
		{Name: "machine learning", Category: "Data Science"},
		{Name: "deep learning", Category: "Data Science"},
		{Name: "nlp", Category: "Data Science"},
		{Name: "pandas", Category: "Data Science"},
		{Name: "numpy", Category: "Data Science"},
		{Name: "scikit-learn", Category: "Data Science"},
		{Name: "tensorflow", Category: "Data Science"},
		{Name: "pytorch", Category: "Data Science"},
		{Name: "tableau", Category: "Analytics"},
		{Name: "power bi", Category: "Analytics"},
		{Name: "excel", Category: "Analytics"},
		{Name: "communication", Category: "Soft Skill"},
		{Name: "teamwork", Category: "Soft Skill"},
		{Name: "leadership", Category: "Soft Skill"},
		{Name: "agile", Category: "Methodology"},
		{Name: "scrum", Category: "Methodology"},
		{Name: "linux", Category: "Systems"},
		{Name: "bash", Category: "Systems"},
		{Name: "shell scripting", Category: "Systems"},
		{Name: "rest api", Category: "Backend"},
		{Name: "graphql", Category: "Backend"},
		{Name: "microservices", Category: "Backend"},
		{Name: "ci/cd", Category: "DevOps"},
		{Name: "jenkins", Category: "DevOps"},
		{Name: "gitlab", Category: "DevOps"},
		{Name: "github", Category: "DevOps"},
		{Name: "jira", Category: "Tooling"},
	}

	for _, it := range items {
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
		_ = affected
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
