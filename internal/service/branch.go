package service

import (
	"context"
	"database/sql"
	"errors"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/logger"
	"librarysystem-backend/internal/repository"
)

type branchService struct {
	branchRepo repository.BranchRepository
}

func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

func (s *branchService) AddBranch(ctx context.Context, branch *domain.Branch) error {
	if branch.Name == "" {
		return domain.InvalidState("branch name is required")
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return domain.StorageFailure("failed to create branch", err)
	}
	logger.Info("branch added", "branch_id", branch.ID, "name", branch.Name)
	return nil
}

func (s *branchService) UpdateBranch(ctx context.Context, id int32, name string) (*domain.Branch, error) {
	branch, err := s.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	branch.Name = name
	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, domain.StorageFailure("failed to update branch", err)
	}
	return branch, nil
}

func (s *branchService) GetBranch(ctx context.Context, id int32) (*domain.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("library branch not found")
	}
	if err != nil {
		return nil, domain.StorageFailure("failed to load branch", err)
	}
	return branch, nil
}
