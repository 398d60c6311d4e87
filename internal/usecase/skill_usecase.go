package usecase

import (
	"context"
	"strings"

	"resumatch/internal/domain/analysis"
	"resumatch/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID       uuid.UUID
	Name     string
	Category string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	AddSkill(ctx context.Context, name, category string) (SkillItem, error)
	Vocabulary(ctx context.Context) analysis.Vocabulary
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name, Category: it.Category})
	}
	return out, nil
}

func (u *Skill) AddSkill(ctx context.Context, name, category string) (SkillItem, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}
	category = strings.TrimSpace(category)

	created, err := u.repo.CreateSkill(ctx, name, category)
	if err != nil {
		return SkillItem{}, ErrInternal
	}
	return SkillItem{ID: created.ID, Name: created.Name, Category: created.Category}, nil
}

// Vocabulary loads the seeded skill set. When the table is empty or
// unreachable the built-in default keeps extraction working.
func (u *Skill) Vocabulary(ctx context.Context) analysis.Vocabulary {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil || len(items) == 0 {
		return analysis.DefaultVocabulary()
	}

	terms := make([]string, 0, len(items))
	for _, it := range items {
		terms = append(terms, it.Name)
	}
	return analysis.NewVocabulary(terms)
}
