package impl

import (
	"context"
	"io"
	"log/slog"

	"classteacher/internal/domain/entity"
	"classteacher/internal/domain/repository"

	"github.com/google/uuid"
)

// Hand-rolled fakes with overridable func fields. A nil func falls back to a
// benign default: lookups miss, mutations succeed.

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- user repository ---

type fakeUserRepo struct {
	CreateFn            func(ctx context.Context, user *entity.User) error
	FindByIDFn          func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFn       func(ctx context.Context, email string) (*entity.User, error)
	FindByPhoneNumberFn func(ctx context.Context, phoneNumber string) (*entity.User, error)
	FindByUsernameFn    func(ctx context.Context, username string) (*entity.User, error)
	FindActiveFn        func(ctx context.Context) ([]*entity.User, error)
	FindAllFn           func(ctx context.Context) ([]*entity.User, error)
	FindDeletedFn       func(ctx context.Context) ([]*entity.User, error)
	UpdateFn            func(ctx context.Context, user *entity.User) error
	SoftDeleteFn        func(ctx context.Context, id uuid.UUID) error
	HardDeleteFn        func(ctx context.Context, id uuid.UUID) error

	created []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, user)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.created = append(f.created, user)

	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.FindByEmailFn != nil {
		return f.FindByEmailFn(ctx, email)
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	if f.FindByPhoneNumberFn != nil {
		return f.FindByPhoneNumberFn(ctx, phoneNumber)
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.FindByUsernameFn != nil {
		return f.FindByUsernameFn(ctx, username)
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindActive(ctx context.Context) ([]*entity.User, error) {
	if f.FindActiveFn != nil {
		return f.FindActiveFn(ctx)
	}

	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx)
	}

	return nil, nil
}

func (f *fakeUserRepo) FindDeleted(ctx context.Context) ([]*entity.User, error) {
	if f.FindDeletedFn != nil {
		return f.FindDeletedFn(ctx)
	}

	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, user)
	}

	return nil
}

func (f *fakeUserRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.SoftDeleteFn != nil {
		return f.SoftDeleteFn(ctx, id)
	}

	return nil
}

func (f *fakeUserRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	if f.HardDeleteFn != nil {
		return f.HardDeleteFn(ctx, id)
	}

	return nil
}

// --- class repository ---

type fakeClassRepo struct {
	CreateFn      func(ctx context.Context, class *entity.Class) error
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	FindByNameFn  func(ctx context.Context, name string) (*entity.Class, error)
	FindActiveFn  func(ctx context.Context) ([]*entity.Class, error)
	FindAllFn     func(ctx context.Context) ([]*entity.Class, error)
	FindDeletedFn func(ctx context.Context) ([]*entity.Class, error)
	UpdateFn      func(ctx context.Context, class *entity.Class) error
	SoftDeleteFn  func(ctx context.Context, id uuid.UUID) error
	HardDeleteFn  func(ctx context.Context, id uuid.UUID) error

	created []*entity.Class
}

func (f *fakeClassRepo) Create(ctx context.Context, class *entity.Class) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, class)
	}
	if class.ID == uuid.Nil {
		class.ID = uuid.New()
	}
	f.created = append(f.created, class)

	return nil
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}

	return nil, repository.ErrClassNotFound
}

func (f *fakeClassRepo) FindByName(ctx context.Context, name string) (*entity.Class, error) {
	if f.FindByNameFn != nil {
		return f.FindByNameFn(ctx, name)
	}

	return nil, repository.ErrClassNotFound
}

func (f *fakeClassRepo) FindActive(ctx context.Context) ([]*entity.Class, error) {
	if f.FindActiveFn != nil {
		return f.FindActiveFn(ctx)
	}

	return nil, nil
}

func (f *fakeClassRepo) FindAll(ctx context.Context) ([]*entity.Class, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx)
	}

	return nil, nil
}

func (f *fakeClassRepo) FindDeleted(ctx context.Context) ([]*entity.Class, error) {
	if f.FindDeletedFn != nil {
		return f.FindDeletedFn(ctx)
	}

	return nil, nil
}

func (f *fakeClassRepo) Update(ctx context.Context, class *entity.Class) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, class)
	}

	return nil
}

func (f *fakeClassRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.SoftDeleteFn != nil {
		return f.SoftDeleteFn(ctx, id)
	}

	return nil
}

func (f *fakeClassRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	if f.HardDeleteFn != nil {
		return f.HardDeleteFn(ctx, id)
	}

	return nil
}

// --- student repository ---

type fakeStudentRepo struct {
	CreateFn      func(ctx context.Context, student *entity.Student) error
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	FindActiveFn  func(ctx context.Context) ([]*entity.Student, error)
	FindAllFn     func(ctx context.Context) ([]*entity.Student, error)
	FindDeletedFn func(ctx context.Context) ([]*entity.Student, error)
	FindByClassFn func(ctx context.Context, classID uuid.UUID) ([]*entity.Student, error)
	UpdateFn      func(ctx context.Context, student *entity.Student) error
	SoftDeleteFn  func(ctx context.Context, id uuid.UUID) error
	HardDeleteFn  func(ctx context.Context, id uuid.UUID) error

	created []*entity.Student
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *entity.Student) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, student)
	}
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	f.created = append(f.created, student)

	return nil
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}

	return nil, repository.ErrStudentNotFound
}

func (f *fakeStudentRepo) FindActive(ctx context.Context) ([]*entity.Student, error) {
	if f.FindActiveFn != nil {
		return f.FindActiveFn(ctx)
	}

	return nil, nil
}

func (f *fakeStudentRepo) FindAll(ctx context.Context) ([]*entity.Student, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx)
	}

	return nil, nil
}

func (f *fakeStudentRepo) FindDeleted(ctx context.Context) ([]*entity.Student, error) {
	if f.FindDeletedFn != nil {
		return f.FindDeletedFn(ctx)
	}

	return nil, nil
}

func (f *fakeStudentRepo) FindByClass(ctx context.Context, classID uuid.UUID) ([]*entity.Student, error) {
	if f.FindByClassFn != nil {
		return f.FindByClassFn(ctx, classID)
	}

	return nil, nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *entity.Student) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, student)
	}

	return nil
}

func (f *fakeStudentRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.SoftDeleteFn != nil {
		return f.SoftDeleteFn(ctx, id)
	}

	return nil
}

func (f *fakeStudentRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	if f.HardDeleteFn != nil {
		return f.HardDeleteFn(ctx, id)
	}

	return nil
}

// --- subject repository ---

type fakeSubjectRepo struct {
	CreateFn      func(ctx context.Context, subject *entity.Subject) error
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Subject, error)
	FindActiveFn  func(ctx context.Context) ([]*entity.Subject, error)
	FindAllFn     func(ctx context.Context) ([]*entity.Subject, error)
	FindDeletedFn func(ctx context.Context) ([]*entity.Subject, error)
	UpdateFn      func(ctx context.Context, subject *entity.Subject) error
	SoftDeleteFn  func(ctx context.Context, id uuid.UUID) error
	HardDeleteFn  func(ctx context.Context, id uuid.UUID) error

	created []*entity.Subject
}

func (f *fakeSubjectRepo) Create(ctx context.Context, subject *entity.Subject) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, subject)
	}
	if subject.ID == uuid.Nil {
		subject.ID = uuid.New()
	}
	f.created = append(f.created, subject)

	return nil
}

func (f *fakeSubjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}

	return nil, repository.ErrSubjectNotFound
}

func (f *fakeSubjectRepo) FindActive(ctx context.Context) ([]*entity.Subject, error) {
	if f.FindActiveFn != nil {
		return f.FindActiveFn(ctx)
	}

	return nil, nil
}

func (f *fakeSubjectRepo) FindAll(ctx context.Context) ([]*entity.Subject, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx)
	}

	return nil, nil
}

func (f *fakeSubjectRepo) FindDeleted(ctx context.Context) ([]*entity.Subject, error) {
	if f.FindDeletedFn != nil {
		return f.FindDeletedFn(ctx)
	}

	return nil, nil
}

func (f *fakeSubjectRepo) Update(ctx context.Context, subject *entity.Subject) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, subject)
	}

	return nil
}

func (f *fakeSubjectRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.SoftDeleteFn != nil {
		return f.SoftDeleteFn(ctx, id)
	}

	return nil
}

func (f *fakeSubjectRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	if f.HardDeleteFn != nil {
		return f.HardDeleteFn(ctx, id)
	}

	return nil
}

// --- transaction manager ---

type fakeFactory struct {
	userRepo    *fakeUserRepo
	classRepo   *fakeClassRepo
	studentRepo *fakeStudentRepo
	subjectRepo *fakeSubjectRepo
}

func (f *fakeFactory) UserRepo() repository.UserRepository       { return f.userRepo }
func (f *fakeFactory) ClassRepo() repository.ClassRepository     { return f.classRepo }
func (f *fakeFactory) StudentRepo() repository.StudentRepository { return f.studentRepo }
func (f *fakeFactory) SubjectRepo() repository.SubjectRepository { return f.subjectRepo }

type fakeTxManager struct {
	factory *fakeFactory
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

// --- password hasher ---

type fakeHasher struct {
	HashFn  func(password string) (string, error)
	CheckFn func(password, hash string) bool

	dummyCheckCalls int
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.HashFn != nil {
		return f.HashFn(password)
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	if f.CheckFn != nil {
		return f.CheckFn(password, hash)
	}

	return hash == "hashed:"+password
}

func (f *fakeHasher) DummyCheck(password string) {
	f.dummyCheckCalls++
}

// --- token service ---

type fakeTokenService struct {
	IssueFn  func(userID uuid.UUID) (string, error)
	VerifyFn func(token string) (uuid.UUID, error)
}

func (f *fakeTokenService) Issue(userID uuid.UUID) (string, error) {
	if f.IssueFn != nil {
		return f.IssueFn(userID)
	}

	return "token-for-" + userID.String(), nil
}

func (f *fakeTokenService) Verify(token string) (uuid.UUID, error) {
	if f.VerifyFn != nil {
		return f.VerifyFn(token)
	}

	return uuid.Nil, nil
}
