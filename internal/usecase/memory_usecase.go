package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voyago/voyago/internal/domain/contract"
	"github.com/voyago/voyago/internal/domain/entity"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

// MemoryUsecase implements the IMemoryUseCase interface. Every operation is
// scoped to the owning user; touching another user's memory is forbidden.
type MemoryUsecase struct {
	memoryRepo    contract.IMemoryRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

func NewMemoryUsecase(memoryRepo contract.IMemoryRepository, uuidGenerator contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *MemoryUsecase {
	return &MemoryUsecase{memoryRepo: memoryRepo, uuidGenerator: uuidGenerator, logger: logger}
}

// check if MemoryUsecase implements the IMemoryUseCase
var _ usecasecontract.IMemoryUseCase = (*MemoryUsecase)(nil)

func validateMemory(m *entity.Memory) error {
	if m.Title == "" {
		return fmt.Errorf("%w: title is required", entity.ErrValidation)
	}
	if m.Type != "" && !entity.ValidMemoryType(m.Type) {
		return fmt.Errorf("%w: invalid memory type %q", entity.ErrValidation, m.Type)
	}
	if m.Mood != "" && !entity.ValidMood(m.Mood) {
		return fmt.Errorf("%w: invalid mood %q", entity.ErrValidation, m.Mood)
	}
	if m.Privacy != "" && !entity.ValidPrivacy(m.Privacy) {
		return fmt.Errorf("%w: invalid privacy setting %q", entity.ErrValidation, m.Privacy)
	}
	return nil
}

// getOwned fetches a memory and verifies the caller owns it.
func (uc *MemoryUsecase) getOwned(ctx context.Context, userID, id string) (*entity.Memory, error) {
	memory, err := uc.memoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: memory %s not found", entity.ErrNotFound, id)
		}
		uc.logger.Errorf("failed to get memory %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to retrieve memory", entity.ErrInternal)
	}
	if memory.UserID != userID {
		return nil, fmt.Errorf("%w: memory belongs to another user", entity.ErrForbidden)
	}
	return memory, nil
}

func (uc *MemoryUsecase) Create(ctx context.Context, userID string, memory *entity.Memory) (*entity.Memory, error) {
	if err := validateMemory(memory); err != nil {
		return nil, err
	}
	if memory.Type == "" {
		memory.Type = entity.MemoryPhoto
	}
	if memory.Privacy == "" {
		memory.Privacy = entity.PrivacyPrivate
	}

	memory.ID = uc.uuidGenerator.NewUUID()
	memory.UserID = userID
	memory.Likes, memory.Comments, memory.Shares, memory.Saves = 0, 0, 0, 0
	memory.IsLiked, memory.IsSaved = false, false
	now := time.Now()
	memory.CreatedAt = now
	memory.UpdatedAt = now

	if err := uc.memoryRepo.Create(ctx, memory); err != nil {
		uc.logger.Errorf("failed to create memory for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to create memory", entity.ErrInternal)
	}
	return memory, nil
}

func (uc *MemoryUsecase) GetByID(ctx context.Context, userID, id string) (*entity.Memory, error) {
	return uc.getOwned(ctx, userID, id)
}

func (uc *MemoryUsecase) List(ctx context.Context, userID, tripID string) ([]entity.Memory, error) {
	memories, err := uc.memoryRepo.ListByUser(ctx, userID, tripID)
	if err != nil {
		uc.logger.Errorf("failed to list memories for user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to list memories", entity.ErrInternal)
	}
	return memories, nil
}

func (uc *MemoryUsecase) Update(ctx context.Context, userID, id string, updates map[string]interface{}) (*entity.Memory, error) {
	memory, err := uc.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	for k, v := range updates {
		switch k {
		case "title":
			if s, ok := v.(string); ok {
				memory.Title = s
			}
		case "description":
			if s, ok := v.(string); ok {
				memory.Description = s
			}
		case "location":
			if s, ok := v.(string); ok {
				memory.Location = s
			}
		case "date":
			if s, ok := v.(string); ok {
				memory.Date = s
			}
		case "travelers":
			if ss, ok := toStringSlice(v); ok {
				memory.Travelers = ss
			}
		case "images":
			if ss, ok := toStringSlice(v); ok {
				memory.Images = ss
			}
		case "videos":
			if ss, ok := toStringSlice(v); ok {
				memory.Videos = ss
			}
		case "tags":
			if ss, ok := toStringSlice(v); ok {
				memory.Tags = ss
			}
		case "type":
			if s, ok := v.(string); ok {
				memory.Type = entity.MemoryType(s)
			}
		case "color":
			if s, ok := v.(string); ok {
				memory.Color = s
			}
		case "trip_id":
			if s, ok := v.(string); ok {
				memory.TripID = s
			}
		case "trip_name":
			if s, ok := v.(string); ok {
				memory.TripName = s
			}
		case "mood":
			if s, ok := v.(string); ok {
				memory.Mood = entity.Mood(s)
			}
		case "privacy":
			if s, ok := v.(string); ok {
				memory.Privacy = entity.Privacy(s)
			}
		}
	}
	if err := validateMemory(memory); err != nil {
		return nil, err
	}
	memory.UpdatedAt = time.Now()

	updated, err := uc.memoryRepo.Update(ctx, memory)
	if err != nil {
		uc.logger.Errorf("failed to update memory %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update memory", entity.ErrInternal)
	}
	return updated, nil
}

func (uc *MemoryUsecase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := uc.memoryRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorf("failed to delete memory %s: %v", id, err)
		return fmt.Errorf("%w: failed to delete memory", entity.ErrInternal)
	}
	return nil
}

// ToggleLike flips the liked flag, adjusting the like counter without going
// below zero.
func (uc *MemoryUsecase) ToggleLike(ctx context.Context, userID, id string) (*entity.Memory, error) {
	memory, err := uc.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if memory.IsLiked {
		memory.IsLiked = false
		if memory.Likes > 0 {
			memory.Likes--
		}
	} else {
		memory.IsLiked = true
		memory.Likes++
	}
	memory.UpdatedAt = time.Now()

	updated, err := uc.memoryRepo.Update(ctx, memory)
	if err != nil {
		uc.logger.Errorf("failed to toggle like on memory %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update memory", entity.ErrInternal)
	}
	return updated, nil
}

// ToggleSave flips the saved flag, adjusting the save counter without going
// below zero.
func (uc *MemoryUsecase) ToggleSave(ctx context.Context, userID, id string) (*entity.Memory, error) {
	memory, err := uc.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if memory.IsSaved {
		memory.IsSaved = false
		if memory.Saves > 0 {
			memory.Saves--
		}
	} else {
		memory.IsSaved = true
		memory.Saves++
	}
	memory.UpdatedAt = time.Now()

	updated, err := uc.memoryRepo.Update(ctx, memory)
	if err != nil {
		uc.logger.Errorf("failed to toggle save on memory %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update memory", entity.ErrInternal)
	}
	return updated, nil
}

func toStringSlice(v interface{}) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, true
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
