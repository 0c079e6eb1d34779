package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/vidtube/vidtube/internal/domain/model"
)

func TestReactionRepository_Toggle(t *testing.T) {
	subjectID := uuid.New()
	actorID := uuid.New()
	subject := model.Subject{Kind: model.SubjectVideo, ID: subjectID}

	tests := []struct {
		name        string
		liked       bool
		mockFn      func(mock pgxmock.PgxPoolIface)
		wantReacted bool
		wantErr     bool
	}{
		{
			name:  "removes an existing same-polarity reaction",
			liked: true,
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM reactions").
					WithArgs("video", subjectID, actorID, true).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
			wantReacted: false,
		},
		{
			name:  "creates a reaction when none exists",
			liked: true,
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM reactions").
					WithArgs("video", subjectID, actorID, true).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec("INSERT INTO reactions").
					WithArgs(
						pgxmock.AnyArg(),
						"video",
						subjectID,
						actorID,
						true,
						pgxmock.AnyArg(),
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectCommit()
			},
			wantReacted: true,
		},
		{
			name:  "flips an opposite-polarity reaction via upsert",
			liked: false,
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM reactions").
					WithArgs("video", subjectID, actorID, false).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec("INSERT INTO reactions").
					WithArgs(
						pgxmock.AnyArg(),
						"video",
						subjectID,
						actorID,
						false,
						pgxmock.AnyArg(),
					).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			wantReacted: true,
		},
		{
			name:  "database error rolls back",
			liked: true,
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM reactions").
					WithArgs("video", subjectID, actorID, true).
					WillReturnError(errors.New("connection refused"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			tt.mockFn(mock)

			repo := NewReactionRepository(mock)
			reacted, err := repo.Toggle(context.Background(), subject, actorID, tt.liked)

			if tt.wantErr {
				if err == nil {
					t.Error("Toggle() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("Toggle() unexpected error = %v", err)
			}
			if reacted != tt.wantReacted {
				t.Errorf("Toggle() reacted = %v, want %v", reacted, tt.wantReacted)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestReactionRepository_ListBySubjects(t *testing.T) {
	now := time.Now()
	subjectID1 := uuid.New()
	subjectID2 := uuid.New()
	actorID := uuid.New()

	tests := []struct {
		name       string
		subjectIDs []uuid.UUID
		mockFn     func(mock pgxmock.PgxPoolIface)
		want       int
	}{
		{
			name:       "returns reactions across subjects",
			subjectIDs: []uuid.UUID{subjectID1, subjectID2},
			mockFn: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{
					"id", "subject_kind", "subject_id", "actor_id", "liked", "created_at",
				}).
					AddRow(uuid.New(), "video", subjectID1, actorID, true, now).
					AddRow(uuid.New(), "video", subjectID2, actorID, false, now)
				mock.ExpectQuery("SELECT .* FROM reactions").
					WithArgs("video", []uuid.UUID{subjectID1, subjectID2}).
					WillReturnRows(rows)
			},
			want: 2,
		},
		{
			name:       "empty subject list skips the store",
			subjectIDs: nil,
			mockFn:     func(mock pgxmock.PgxPoolIface) {},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			tt.mockFn(mock)

			repo := NewReactionRepository(mock)
			got, err := repo.ListBySubjects(context.Background(), model.SubjectVideo, tt.subjectIDs)
			if err != nil {
				t.Fatalf("ListBySubjects() unexpected error = %v", err)
			}

			if len(got) != tt.want {
				t.Errorf("ListBySubjects() returned %d reactions, want %d", len(got), tt.want)
			}
			for _, reaction := range got {
				if reaction.Subject.Kind != model.SubjectVideo {
					t.Errorf("unexpected subject kind %q", reaction.Subject.Kind)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestReactionRepository_CountLikes(t *testing.T) {
	subjectID := uuid.New()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"count"}).AddRow(int64(7))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("comment", subjectID).
		WillReturnRows(rows)

	repo := NewReactionRepository(mock)
	count, err := repo.CountLikes(context.Background(), model.Subject{Kind: model.SubjectComment, ID: subjectID})
	if err != nil {
		t.Fatalf("CountLikes() unexpected error = %v", err)
	}

	if count != 7 {
		t.Errorf("CountLikes() = %d, want 7", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestReactionRepository_ListLikedVideoIDs(t *testing.T) {
	actorID := uuid.New()
	id1 := uuid.New()
	id2 := uuid.New()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"subject_id"}).
		AddRow(id1).
		AddRow(id2)
	mock.ExpectQuery("SELECT subject_id").
		WithArgs(actorID).
		WillReturnRows(rows)

	repo := NewReactionRepository(mock)
	ids, err := repo.ListLikedVideoIDs(context.Background(), actorID)
	if err != nil {
		t.Fatalf("ListLikedVideoIDs() unexpected error = %v", err)
	}

	if len(ids) != 2 || ids[0] != id1 || ids[1] != id2 {
		t.Errorf("ListLikedVideoIDs() = %v", ids)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestReactionRepository_DeleteBySubject(t *testing.T) {
	subjectID := uuid.New()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec("DELETE FROM reactions").
		WithArgs("tweet", subjectID).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	repo := NewReactionRepository(mock)
	if err := repo.DeleteBySubject(context.Background(), model.Subject{Kind: model.SubjectTweet, ID: subjectID}); err != nil {
		t.Fatalf("DeleteBySubject() unexpected error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
