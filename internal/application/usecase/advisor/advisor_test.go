package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finai/backend/internal/application/adapter"
	"github.com/finai/backend/internal/domain/entity"
	domainerror "github.com/finai/backend/internal/domain/error"
	"github.com/finai/backend/internal/domain/insight"
	"github.com/finai/backend/internal/integration/persistence"
	"github.com/finai/backend/test/integration/mock"
)

// stubInference records the last request and replies with a fixed text or error.
type stubInference struct {
	reply     string
	err       error
	available bool
	last      adapter.InferenceRequest
	calls     int
}

func (s *stubInference) Generate(_ context.Context, req adapter.InferenceRequest) (string, error) {
	s.calls++
	s.last = req
	return s.reply, s.err
}

func (s *stubInference) IsAvailable() bool { return s.available }

func (s *stubInference) Name() string { return "stub" }

func sampleUser() *entity.User {
	user := entity.NewUser("Priya")
	user.MonthlyIncome = decimal.NewFromInt(100000)
	user.MonthlyExpenses = decimal.NewFromInt(60000)
	user.EmergencyFund = decimal.NewFromInt(60000)
	user.FinancialGoal = "Car"
	user.GoalAmount = decimal.NewFromInt(300000)
	return user
}

func TestBuildPrompt(t *testing.T) {
	user := sampleUser()
	prompt := BuildPrompt(user, insight.NewAnalyzer(insight.InputFromUser(user)), "")

	for _, fragment := range []string{
		SystemPrompt,
		"- Monthly Income: ₹100,000",
		"- Savings Rate: 40.0%",
		"- Risk Profile: medium",
		"- Goal: Car (₹300,000 in 12 months)",
		"Current Insights:\n[",
		"User: " + DefaultMessage,
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("expected prompt to contain %q\n%s", fragment, prompt)
		}
	}
}

func TestFallbackAdvice(t *testing.T) {
	user := sampleUser()
	got := FallbackAdvice(insight.NewAnalyzer(insight.InputFromUser(user)))
	want := "Based on your financial profile, consider this allocation: 60% Equities (₹60,000), 30% Debt (₹30,000), 10% Gold (₹10,000)."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAdvisor_Advise(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		stub := &stubInference{reply: "  Save more.  ", available: true}
		result := NewAdvisor(stub, DefaultSettings()).Advise(ctx, sampleUser(), "help")

		if result.Status != StatusSuccess || result.Advice != "Save more." {
			t.Errorf("unexpected result %+v", result)
		}
		if stub.last.MaxTokens != 500 || stub.last.Temperature != 0.7 {
			t.Errorf("unexpected generation settings %+v", stub.last)
		}
		if !strings.HasSuffix(stub.last.Prompt, "User: help") {
			t.Error("expected latest message at the end of the prompt")
		}
	})

	t.Run("upstream failure falls back", func(t *testing.T) {
		stub := &stubInference{err: errors.New("503 loading"), available: true}
		result := NewAdvisor(stub, DefaultSettings()).Advise(ctx, sampleUser(), "")

		if result.Status != StatusError {
			t.Errorf("expected error status, got %s", result.Status)
		}
		if !strings.Contains(result.Error, "503 loading") {
			t.Errorf("expected upstream error text, got %q", result.Error)
		}
		if result.FallbackAdvice == "" || result.Text() != result.FallbackAdvice {
			t.Error("expected non-empty fallback advice")
		}
	})

	t.Run("empty reply falls back", func(t *testing.T) {
		stub := &stubInference{reply: "   ", available: true}
		result := NewAdvisor(stub, DefaultSettings()).Advise(ctx, sampleUser(), "")
		if result.Status != StatusError || result.Error != domainerror.ErrAdvisorEmptyResponse.Error() {
			t.Errorf("expected empty response error, got %+v", result)
		}
	})

	t.Run("unconfigured provider is never called", func(t *testing.T) {
		stub := &stubInference{available: false}
		result := NewAdvisor(stub, DefaultSettings()).Advise(ctx, sampleUser(), "")
		if stub.calls != 0 {
			t.Error("expected no inference call")
		}
		if result.FallbackAdvice == "" {
			t.Error("expected fallback advice")
		}
	})

	t.Run("nil provider", func(t *testing.T) {
		result := NewAdvisor(nil, DefaultSettings()).Advise(ctx, sampleUser(), "")
		if result.Status != StatusError {
			t.Errorf("expected error status, got %s", result.Status)
		}
	})
}

type fixture struct {
	users adapter.UserRepository
	chats adapter.ChatRepository
	user  *entity.User
}

func newFixture(t *testing.T) *fixture {
	db := mock.NewMemoryDB(t)
	f := &fixture{
		users: persistence.NewUserRepository(db),
		chats: persistence.NewChatRepository(db),
		user:  sampleUser(),
	}
	if err := f.users.Create(context.Background(), adapter.ProfileChange{User: f.user}); err != nil {
		t.Fatalf("failed to store user: %v", err)
	}
	return f
}

func TestChatUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("records both turns", func(t *testing.T) {
		f := newFixture(t)
		uc := NewChatUseCase(f.users, f.chats, NewAdvisor(&stubInference{reply: "Invest in index funds.", available: true}, DefaultSettings()))

		out, err := uc.Execute(ctx, ChatInput{UserID: f.user.ID, Message: "Where to invest?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "Invest in index funds." {
			t.Errorf("unexpected response %q", out.Response)
		}

		history, _ := f.chats.FindByUserID(ctx, f.user.ID, 0)
		if len(history) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(history))
		}
		if history[0].Role != entity.ChatRoleUser || history[1].Role != entity.ChatRoleAssistant {
			t.Errorf("unexpected roles %s, %s", history[0].Role, history[1].Role)
		}
	})

	t.Run("advisor failure still answers", func(t *testing.T) {
		f := newFixture(t)
		uc := NewChatUseCase(f.users, f.chats, NewAdvisor(&stubInference{err: errors.New("timeout"), available: true}, DefaultSettings()))

		out, err := uc.Execute(ctx, ChatInput{UserID: f.user.ID, Message: "hi"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.HasPrefix(out.Response, "Based on your financial profile") {
			t.Errorf("expected fallback response, got %q", out.Response)
		}
		if out.Status != StatusError {
			t.Errorf("expected error status, got %s", out.Status)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		uc := NewChatUseCase(f.users, f.chats, NewAdvisor(nil, DefaultSettings()))

		_, err := uc.Execute(ctx, ChatInput{UserID: uuid.New(), Message: "hi"})
		var advErr *domainerror.AdvisorError
		if !errors.As(err, &advErr) || advErr.Code != domainerror.ErrCodeAdvisorUserNotFound {
			t.Errorf("expected user not found, got %v", err)
		}
	})
}

func TestGetAdviceUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewGetAdviceUseCase(f.users, NewAdvisor(nil, DefaultSettings()))

	fund := decimal.NewFromInt(240000)
	result, err := uc.Execute(ctx, GetAdviceInput{UserID: f.user.ID, EmergencyFund: &fund})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, in := range result.Insights {
		if strings.Contains(in.Message, "Emergency fund") {
			t.Errorf("expected override to satisfy the emergency fund rule, got %q", in.Message)
		}
	}
	if result.Timestamp.IsZero() {
		t.Error("expected timestamp")
	}

	stored, _ := f.users.FindByID(ctx, f.user.ID)
	if !stored.EmergencyFund.Equal(decimal.NewFromInt(60000)) {
		t.Error("expected override not to be persisted")
	}
}

func TestGetHistoryUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	chat := NewChatUseCase(f.users, f.chats, NewAdvisor(nil, DefaultSettings()))
	for i := 0; i < 3; i++ {
		if _, err := chat.Execute(ctx, ChatInput{UserID: f.user.ID, Message: "hi"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	out, err := NewGetHistoryUseCase(f.users, f.chats).Execute(ctx, GetHistoryInput{UserID: f.user.ID, Limit: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Messages) != 4 {
		t.Errorf("expected 4 messages, got %d", len(out.Messages))
	}
}
