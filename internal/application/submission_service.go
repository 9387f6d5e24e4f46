package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/orkidhq/orkid-cms/internal/domain/entity"
	repo "github.com/orkidhq/orkid-cms/internal/domain/repository"
	"github.com/orkidhq/orkid-cms/pkg/helpers"
	"github.com/orkidhq/orkid-cms/pkg/mailer"
)

// SubmissionInput is the write shape for a task submission.
type SubmissionInput struct {
	TaskID         string
	UserID         string
	VideoID        string
	SubmissionType entity.ContentKind
	FileURL        string
}

// SubmissionService records end-user answers to tasks.
//
// With Strict set (the default), Create verifies the referenced task, user and
// video exist and that the submission's type matches the task's type. Unset,
// it replicates the legacy system, which accepted any combination. Reviewer
// notification is fire and forget: a dead broker never fails the write.
type SubmissionService struct {
	Repo   repo.SubmissionRepository
	Tasks  repo.TaskRepository
	Users  repo.UserRepository
	Videos repo.VideoRepository
	Strict bool
	Logger *logrus.Logger

	Pub      *helpers.RabbitPublisher
	NotifyTo string
}

func NewSubmissionService(r repo.SubmissionRepository, tasks repo.TaskRepository, users repo.UserRepository, videos repo.VideoRepository, strict bool, logger *logrus.Logger, pub *helpers.RabbitPublisher, notifyTo string) *SubmissionService {
	return &SubmissionService{Repo: r, Tasks: tasks, Users: users, Videos: videos, Strict: strict, Logger: logger, Pub: pub, NotifyTo: notifyTo}
}

func (s *SubmissionService) Create(ctx context.Context, in SubmissionInput) (*entity.TaskSubmission, error) {
	if !in.SubmissionType.Valid() {
		return nil, invalid("submissionType", "must be one of: image, video, pdf, text, audio")
	}
	if s.Strict {
		task, err := s.Tasks.GetByID(ctx, in.TaskID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, invalid("taskId", "references a task that does not exist")
			}
			return nil, err
		}
		if task.Type != in.SubmissionType {
			return nil, invalid("submissionType", "%q does not match the task's type %q", in.SubmissionType, task.Type)
		}
		if _, err := s.Users.GetByID(ctx, in.UserID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, invalid("userId", "references a user that does not exist")
			}
			return nil, err
		}
		if _, err := s.Videos.GetByID(ctx, in.VideoID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, invalid("videoId", "references a video that does not exist")
			}
			return nil, err
		}
	}

	sub := &entity.TaskSubmission{
		TaskID:         in.TaskID,
		UserID:         in.UserID,
		VideoID:        in.VideoID,
		SubmissionType: in.SubmissionType,
		FileURL:        in.FileURL,
	}
	if err := s.Repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	s.notify(ctx, sub)
	return sub, nil
}

func (s *SubmissionService) List(ctx context.Context, f repo.SubmissionFilter) ([]entity.TaskSubmission, error) {
	return s.Repo.List(ctx, f, 0)
}

func (s *SubmissionService) Update(ctx context.Context, id string, kind entity.ContentKind, fileURL string) (*entity.TaskSubmission, error) {
	if !kind.Valid() {
		return nil, invalid("submissionType", "must be one of: image, video, pdf, text, audio")
	}
	sub, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Strict {
		// The task reference may have gone dangling since the submission was
		// created; the type rule can only be enforced while it still resolves.
		task, err := s.Tasks.GetByID(ctx, sub.TaskID)
		if err == nil && task.Type != kind {
			return nil, invalid("submissionType", "%q does not match the task's type %q", kind, task.Type)
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
	}
	sub.SubmissionType = kind
	sub.FileURL = fileURL
	if err := s.Repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *SubmissionService) notify(ctx context.Context, sub *entity.TaskSubmission) {
	if s.Pub == nil || s.NotifyTo == "" {
		return
	}
	job := mailer.NotifyJob{
		To:      s.NotifyTo,
		Subject: "New task submission",
		Text:    "A new " + string(sub.SubmissionType) + " submission arrived for task " + sub.TaskID + ".",
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("submission_id", sub.ID).Warn("notify publish failed")
	}
}
