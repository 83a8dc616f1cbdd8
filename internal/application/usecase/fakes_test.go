package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JanderLiborio20/softfit-sub000/internal/application/dto"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/entity"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/nutrition"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/repository"
	"github.com/JanderLiborio20/softfit-sub000/internal/domain/valueobject"
)

// Relógio fixo compartilhado pelos testes do pacote.
var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func nowFn() time.Time { return fixedNow }

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func seedUser(t *testing.T, repo *fakeUserRepo, id, emailRaw string, role entity.Role) *entity.User {
	t.Helper()
	email, err := valueobject.NewEmail(emailRaw)
	require.NoError(t, err)
	u, err := entity.ReconstituteUser(id, email, "$2a$10$hashdeteste", "Usuário Teste", role, fixedNow, fixedNow)
	require.NoError(t, err)
	repo.users[id] = u
	return u
}

// seedClientProfile cria um perfil com metas calculadas para o vetor
// masculino 80kg/180cm/30 anos, moderadamente ativo, perder peso.
func seedClientProfile(t *testing.T, repo *fakeClientProfileRepo, userID string) *entity.ClientProfile {
	t.Helper()
	dob := fixedNow.AddDate(-30, 0, 0)
	goals, err := nutrition.CalculateGoals(nutrition.GoalInput{
		DateOfBirth:   dob,
		Gender:        nutrition.GenderMale,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: nutrition.ActivityModeratelyActive,
		Goal:          nutrition.GoalLoseWeight,
	}, fixedNow)
	require.NoError(t, err)
	profile, err := entity.NewClientProfile(entity.ClientProfileParams{
		UserID:            userID,
		DateOfBirth:       dob,
		Gender:            nutrition.GenderMale,
		HeightCm:          180,
		WeightKg:          80,
		Goal:              nutrition.GoalLoseWeight,
		ActivityLevel:     nutrition.ActivityModeratelyActive,
		DailyCaloriesGoal: goals.DailyCalories,
		DailyMacrosGoal:   goals.DailyMacros,
	}, fixedNow)
	require.NoError(t, err)
	repo.profiles[userID] = profile
	return profile
}

// Fakes em memória das portas de repositório.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID()] = u; return nil }
func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID()] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error      { delete(r.users, id); return nil }

type fakeClientProfileRepo struct {
	profiles map[string]*entity.ClientProfile
}

func newFakeClientProfileRepo() *fakeClientProfileRepo {
	return &fakeClientProfileRepo{profiles: map[string]*entity.ClientProfile{}}
}

func (r *fakeClientProfileRepo) Create(p *entity.ClientProfile) error {
	r.profiles[p.UserID()] = p
	return nil
}
func (r *fakeClientProfileRepo) FindByUserID(userID string) (*entity.ClientProfile, error) {
	return r.profiles[userID], nil
}
func (r *fakeClientProfileRepo) Update(p *entity.ClientProfile) error {
	r.profiles[p.UserID()] = p
	return nil
}

type fakeNutritionistRepo struct {
	profiles map[string]*entity.NutritionistProfile
}

func newFakeNutritionistRepo() *fakeNutritionistRepo {
	return &fakeNutritionistRepo{profiles: map[string]*entity.NutritionistProfile{}}
}

func (r *fakeNutritionistRepo) Create(p *entity.NutritionistProfile) error {
	r.profiles[p.UserID()] = p
	return nil
}
func (r *fakeNutritionistRepo) FindByUserID(userID string) (*entity.NutritionistProfile, error) {
	return r.profiles[userID], nil
}
func (r *fakeNutritionistRepo) Update(p *entity.NutritionistProfile) error {
	r.profiles[p.UserID()] = p
	return nil
}

type fakeLinkRepo struct {
	links map[string]*entity.ClientNutritionistLink
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: map[string]*entity.ClientNutritionistLink{}}
}

func (r *fakeLinkRepo) Create(l *entity.ClientNutritionistLink) error {
	r.links[l.ID()] = l
	return nil
}
func (r *fakeLinkRepo) FindByID(id string) (*entity.ClientNutritionistLink, error) {
	return r.links[id], nil
}
func (r *fakeLinkRepo) Update(l *entity.ClientNutritionistLink) error {
	r.links[l.ID()] = l
	return nil
}
func (r *fakeLinkRepo) FindByClientAndNutritionist(clientID, nutritionistID string, statuses []entity.LinkStatus) (*entity.ClientNutritionistLink, error) {
	for _, l := range r.links {
		if l.ClientID() != clientID || l.NutritionistID() != nutritionistID {
			continue
		}
		for _, s := range statuses {
			if l.Status() == s {
				return l, nil
			}
		}
	}
	return nil, nil
}
func (r *fakeLinkRepo) ListByClient(clientID string) ([]*entity.ClientNutritionistLink, error) {
	var out []*entity.ClientNutritionistLink
	for _, l := range r.links {
		if l.ClientID() == clientID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *fakeLinkRepo) ListByNutritionist(nutritionistID string) ([]*entity.ClientNutritionistLink, error) {
	var out []*entity.ClientNutritionistLink
	for _, l := range r.links {
		if l.NutritionistID() == nutritionistID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeMealRepo struct {
	meals map[string]*entity.Meal
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{meals: map[string]*entity.Meal{}}
}

func (r *fakeMealRepo) Create(m *entity.Meal) error { r.meals[m.ID()] = m; return nil }
func (r *fakeMealRepo) FindByID(id string) (*entity.Meal, error) {
	return r.meals[id], nil
}
func (r *fakeMealRepo) Update(m *entity.Meal) error { r.meals[m.ID()] = m; return nil }
func (r *fakeMealRepo) Delete(id string) error      { delete(r.meals, id); return nil }
func (r *fakeMealRepo) ListByUserAndDate(userID string, date time.Time) ([]*entity.Meal, error) {
	var out []*entity.Meal
	for _, m := range r.meals {
		if m.UserID() == userID && sameDay(m.MealTime(), date) {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMealRepo) GetTotalCaloriesByUserAndDate(userID string, date time.Time) (float64, error) {
	total := 0.0
	for _, m := range r.meals {
		if m.UserID() == userID && sameDay(m.MealTime(), date) {
			total += m.Calories()
		}
	}
	return total, nil
}

type fakePlanRepo struct {
	plans map[string]*entity.NutritionPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]*entity.NutritionPlan{}}
}

func (r *fakePlanRepo) Create(p *entity.NutritionPlan) error { r.plans[p.ID()] = p; return nil }
func (r *fakePlanRepo) FindByID(id string) (*entity.NutritionPlan, error) {
	return r.plans[id], nil
}
func (r *fakePlanRepo) Update(p *entity.NutritionPlan) error { r.plans[p.ID()] = p; return nil }
func (r *fakePlanRepo) FindActiveByClientID(clientID string) (*entity.NutritionPlan, error) {
	for _, p := range r.plans {
		if p.ClientID() == clientID && p.IsActive() {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePlanRepo) ListByClient(clientID string) ([]*entity.NutritionPlan, error) {
	var out []*entity.NutritionPlan
	for _, p := range r.plans {
		if p.ClientID() == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakePlanRepo) ListByNutritionist(nutritionistID string) ([]*entity.NutritionPlan, error) {
	var out []*entity.NutritionPlan
	for _, p := range r.plans {
		if p.NutritionistID() == nutritionistID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeWorkoutRepo struct {
	workouts map[string]*entity.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: map[string]*entity.Workout{}}
}

func (r *fakeWorkoutRepo) Create(w *entity.Workout) error { r.workouts[w.ID()] = w; return nil }
func (r *fakeWorkoutRepo) FindByID(id string) (*entity.Workout, error) {
	return r.workouts[id], nil
}
func (r *fakeWorkoutRepo) Update(w *entity.Workout) error { r.workouts[w.ID()] = w; return nil }
func (r *fakeWorkoutRepo) Delete(id string) error         { delete(r.workouts, id); return nil }
func (r *fakeWorkoutRepo) ListByUser(userID string) ([]*entity.Workout, error) {
	var out []*entity.Workout
	for _, w := range r.workouts {
		if w.UserID() == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeHydrationRepo struct {
	records map[string]*entity.Hydration
}

func newFakeHydrationRepo() *fakeHydrationRepo {
	return &fakeHydrationRepo{records: map[string]*entity.Hydration{}}
}

func (r *fakeHydrationRepo) Create(h *entity.Hydration) error { r.records[h.ID()] = h; return nil }
func (r *fakeHydrationRepo) ListByUserAndDate(userID string, date time.Time) ([]*entity.Hydration, error) {
	var out []*entity.Hydration
	for _, h := range r.records {
		if h.UserID() == userID && sameDay(h.Timestamp(), date) {
			out = append(out, h)
		}
	}
	return out, nil
}
func (r *fakeHydrationRepo) GetTotalVolumeByUserAndDate(userID string, date time.Time) (int, error) {
	total := 0
	for _, h := range r.records {
		if h.UserID() == userID && sameDay(h.Timestamp(), date) {
			total += h.VolumeMl()
		}
	}
	return total, nil
}

// fakeTx executa os callbacks direto sobre os fakes, sem transação real.
type fakeTx struct {
	links         *fakeLinkRepo
	nutritionists *fakeNutritionistRepo
	plans         *fakePlanRepo
}

func (t *fakeTx) RunLink(_ context.Context, fn func(repository.LinkRepository, repository.NutritionistProfileRepository) error) error {
	return fn(t.links, t.nutritionists)
}

func (t *fakeTx) RunPlan(_ context.Context, fn func(repository.NutritionPlanRepository) error) error {
	return fn(t.plans)
}

// fakeAI devolve um resultado fixo para a análise.
type fakeAI struct {
	result *dto.MealAnalysisDTO
	err    error
	calls  int
}

func (a *fakeAI) AnalyzeMeal(_ context.Context, _ dto.AnalyzeMealRequest) (*dto.MealAnalysisDTO, error) {
	a.calls++
	return a.result, a.err
}

// fakePDF devolve bytes fixos.
type fakePDF struct {
	bytes []byte
	err   error
}

func (p *fakePDF) GeneratePlanPDF(_ context.Context, _ *entity.NutritionPlan, _ *entity.NutritionistProfile, _ string) ([]byte, error) {
	return p.bytes, p.err
}
