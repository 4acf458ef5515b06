package sdk

// User roles as issued by the backend. End users always carry RoleUser; the
// remaining roles belong to the admin panel.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
	RoleModerator  = "moderator"
	RoleAnalyst    = "analyst"
)

// User is the backend's projection of the authenticated account. It is
// replaced wholesale on login and logout, never mutated in place.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`

	// End-user fields.
	WalletBalance      string `json:"wallet_balance,omitempty"`
	IsTrialActive      *bool  `json:"is_trial_active,omitempty"`
	TrialDaysLeft      *int   `json:"trial_days_left,omitempty"`
	SubscriptionActive *bool  `json:"subscription_active,omitempty"`

	// Admin capability flags.
	CanManageStocks *bool `json:"can_manage_stocks,omitempty"`
	CanManageConfig *bool `json:"can_manage_config,omitempty"`
}

// Stock is a tradeable instrument.
type Stock struct {
	ID             int64  `json:"id"`
	Symbol         string `json:"symbol"`
	Name           string `json:"name"`
	ExchangeSuffix string `json:"exchange_suffix,omitempty"`
	Category       string `json:"category,omitempty"`
	IsActive       bool   `json:"is_active"`
}

// StockCategory groups stocks for browsing.
type StockCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DailyPrice is one daily OHLCV bar.
type DailyPrice struct {
	ID          int64   `json:"id"`
	Stock       int64   `json:"stock"`
	StockSymbol string  `json:"stock_symbol"`
	Date        string  `json:"date"`
	OpenPrice   float64 `json:"open_price"`
	HighPrice   float64 `json:"high_price"`
	LowPrice    float64 `json:"low_price"`
	ClosePrice  float64 `json:"close_price"`
	Volume      int64   `json:"volume"`
}

// WatchlistItem is one entry on the user's ordered watchlist.
type WatchlistItem struct {
	ID           int64  `json:"id"`
	StockID      int64  `json:"stock"`
	StockDetails *Stock `json:"stock_details,omitempty"`
	Order        int    `json:"order"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// WatchlistReorderItem pairs an entry with its new position.
type WatchlistReorderItem struct {
	ID    int64 `json:"id"`
	Order int   `json:"order"`
}

// Holding is one position in the paper portfolio.
type Holding struct {
	ID              int64  `json:"id"`
	StockID         int64  `json:"stock"`
	StockDetails    *Stock `json:"stock_details,omitempty"`
	Quantity        int64  `json:"quantity"`
	AverageBuyPrice string `json:"average_buy_price"`
	InvestedValue   string `json:"invested_value"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// Transaction is one executed paper trade.
type Transaction struct {
	ID          int64  `json:"id"`
	StockID     int64  `json:"stock"`
	StockSymbol string `json:"stock_symbol"`
	Type        string `json:"type"`
	Quantity    int64  `json:"quantity"`
	Price       string `json:"price"`
	Amount      string `json:"amount"`
	CreatedAt   string `json:"created_at"`
}

// Trade directions accepted by the portfolio endpoint.
const (
	TradeBuy  = "BUY"
	TradeSell = "SELL"
)

// TradeRequest places a paper trade.
type TradeRequest struct {
	StockID  int64  `json:"stock_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	Action   string `json:"action" validate:"required,oneof=BUY SELL"`
}

// BacktestRun is a submitted backtest and its lifecycle state.
type BacktestRun struct {
	ID                int64  `json:"id"`
	RunID             string `json:"run_id"`
	Strategy          string `json:"strategy"`
	Status            string `json:"status"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	InitialAmount     string `json:"initial_amount,omitempty"`
	FinalWalletAmount string `json:"final_wallet_amount,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
}

// BacktestResult is one trade produced by a backtest run.
type BacktestResult struct {
	ID          int64  `json:"id"`
	StockSymbol string `json:"stock_symbol"`
	Date        string `json:"date"`
	Action      string `json:"action"`
	Quantity    int64  `json:"quantity"`
	Price       string `json:"price"`
	PnL         string `json:"pnl,omitempty"`
}

// BacktestRequest submits a new backtest.
type BacktestRequest struct {
	Strategy      string `json:"strategy" validate:"required"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	InitialAmount string `json:"initial_amount,omitempty"`
}

// Notification is one in-app notification.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// Plan is a subscription plan.
type Plan struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Description       string   `json:"description,omitempty"`
	MonthlyPrice      string   `json:"monthly_price"`
	YearlyPrice       string   `json:"yearly_price"`
	Priority          int      `json:"priority"`
	Features          []string `json:"features,omitempty"`
	IsActive          bool     `json:"is_active"`
	IsDefault         bool     `json:"is_default"`
	AvailablePeriod   []string `json:"available_period,omitempty"`
	DefaultPeriodDays int      `json:"default_period_days,omitempty"`
}

// Coupon is a discount code for subscriptions.
type Coupon struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	DiscountPercent string `json:"discount_percent"`
	ValidFrom       string `json:"valid_from"`
	ValidUntil      string `json:"valid_until"`
	MaxUsage        int    `json:"max_usage"`
	UsedCount       int    `json:"used_count"`
}

// Subscription is the user's current plan assignment.
type Subscription struct {
	ID        int64  `json:"id"`
	Plan      *Plan  `json:"plan"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
}

// PaymentRecord is one wallet transaction.
type PaymentRecord struct {
	ID        int64  `json:"id"`
	Amount    string `json:"amount"`
	Kind      string `json:"kind"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// StrategyMaster is a platform-defined trading strategy.
type StrategyMaster struct {
	ID          int64          `json:"id"`
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status"`
	Type        string         `json:"type"`
	Logic       map[string]any `json:"logic,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
}

// SyncLog is one entry from the market data sync journal.
type SyncLog struct {
	ID         int64  `json:"id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// MarketStatus reports whether the simulated market is open.
type MarketStatus struct {
	IsOpen    bool   `json:"is_open"`
	NextOpen  string `json:"next_open,omitempty"`
	NextClose string `json:"next_close,omitempty"`
}

// Sector is a tracked index sector (NIFTY50, BANKNIFTY, ...).
type Sector struct {
	ID           int64  `json:"id"`
	Enum         string `json:"enum"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
}

// SectorDailyPrice is one daily OHLCV bar for a sector index.
type SectorDailyPrice struct {
	ID         int64   `json:"id"`
	Sector     int64   `json:"sector"`
	SectorEnum string  `json:"sector_enum,omitempty"`
	Date       string  `json:"date"`
	OpenPrice  float64 `json:"open_price"`
	HighPrice  float64 `json:"high_price"`
	LowPrice   float64 `json:"low_price"`
	ClosePrice float64 `json:"close_price"`
	Volume     int64   `json:"volume"`
	IV         string  `json:"iv,omitempty"`
}

// OptionContract is an option series on a stock or sector underlying.
type OptionContract struct {
	ID               int64  `json:"id"`
	UnderlyingType   string `json:"underlying_type"`
	UnderlyingSymbol string `json:"underlying_symbol"`
	ExpiryDate       string `json:"expiry_date"`
	OptionType       string `json:"option_type"`
	OptionStrike     string `json:"option_strike"`
}

// RuleBasedStrategy is a user-authored strategy built from JSON rules.
type RuleBasedStrategy struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Rules       map[string]any `json:"rules_json,omitempty"`
	IsPublic    bool           `json:"is_public"`
	CreatedAt   string         `json:"created_at,omitempty"`
}

// StrategySignal is one computed entry/exit signal for a stock.
type StrategySignal struct {
	ID            int64  `json:"id"`
	Stock         int64  `json:"stock"`
	StockSymbol   string `json:"stock_symbol,omitempty"`
	Strategy      string `json:"strategy"`
	Date          string `json:"date"`
	Direction     string `json:"signal_direction,omitempty"`
	ExpectedValue string `json:"expected_value,omitempty"`
}

// SignalPerformance aggregates a strategy's signal hit rate over a range.
type SignalPerformance struct {
	Strategy     string `json:"strategy"`
	TotalSignals int    `json:"total_signals"`
	WinRate      string `json:"win_rate,omitempty"`
	AvgReturn    string `json:"avg_return,omitempty"`
}

// Pagination is the backend's page envelope for admin listings.
type Pagination struct {
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// PlatformUser is an end-user account as seen from the admin panel.
type PlatformUser struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Mobile        string `json:"mobile,omitempty"`
	Role          string `json:"role"`
	IsActive      bool   `json:"is_active"`
	WalletBalance string `json:"wallet_balance,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// AdminAccount is an operator account. Only superadmins may manage these.
type AdminAccount struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	Role            string `json:"role"`
	IsActive        bool   `json:"is_active"`
	LastLogin       string `json:"last_login,omitempty"`
	CanManageStocks bool   `json:"can_manage_stocks"`
	CanManageConfig bool   `json:"can_manage_config"`
}

// ConfigEntry is one platform configuration key.
type ConfigEntry struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Broadcast is a notification sent to all users or to one plan's subscribers.
type Broadcast struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	NotificationType string `json:"notification_type"`
	TargetAudience   string `json:"target_audience"`
	TargetPlan       *int64 `json:"target_plan,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}
