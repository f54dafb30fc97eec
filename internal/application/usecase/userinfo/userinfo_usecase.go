package userinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ojunaidi/portfolio/internal/domain/userinfo"
)

type UserInfoUseCase struct {
	userInfoRepo userinfo.Repository
}

func NewUserInfoUseCase(repo userinfo.Repository) *UserInfoUseCase {
	return &UserInfoUseCase{userInfoRepo: repo}
}

type GetUserInfoOutput struct {
	UserInfo *userinfo.UserInfo
}

// ExecuteGet returns the singleton row, nil when none has been written yet.
func (uc *UserInfoUseCase) ExecuteGet(ctx context.Context) (*GetUserInfoOutput, error) {
	u, err := uc.userInfoRepo.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user info failed: %w", err)
	}
	return &GetUserInfoOutput{UserInfo: u}, nil
}

type UpsertUserInfoInput struct {
	FullName  string
	JobTitle  string
	Email     string
	Phone     string
	Location  string
	BirthDate string
}

type UpsertUserInfoOutput struct {
	UserInfo *userinfo.UserInfo
}

// ExecuteUpsert is get-or-create: the first write creates the row, later
// writes modify it in place keeping its id. The find-then-write pair is two
// store calls; a concurrent first write can race into a duplicate row
// (single-admin assumption, kept as-is).
func (uc *UserInfoUseCase) ExecuteUpsert(ctx context.Context, input UpsertUserInfoInput) (*UpsertUserInfoOutput, error) {
	existing, err := uc.userInfoRepo.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user info failed: %w", err)
	}

	now := time.Now().UTC()

	if existing != nil {
		existing.FullName = input.FullName
		existing.JobTitle = input.JobTitle
		existing.Email = input.Email
		existing.Phone = input.Phone
		existing.Location = input.Location
		existing.BirthDate = input.BirthDate
		existing.UpdatedAt = now

		if err := uc.userInfoRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update user info failed: %w", err)
		}
		return &UpsertUserInfoOutput{UserInfo: existing}, nil
	}

	created := &userinfo.UserInfo{
		ID:        uuid.New(),
		FullName:  input.FullName,
		JobTitle:  input.JobTitle,
		Email:     input.Email,
		Phone:     input.Phone,
		Location:  input.Location,
		BirthDate: input.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userInfoRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("create user info failed: %w", err)
	}
	return &UpsertUserInfoOutput{UserInfo: created}, nil
}
