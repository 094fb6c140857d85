package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"photo-market-backend/internal/models"
)

const foreignKeyViolation = "23503"

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

func (d *DatabaseClient) DB() *sql.DB {
	return d.db
}

const userColumns = `id, COALESCE(email, ''), stripe_account_id, stripe_customer_id,
	stripe_charges_enabled, stripe_details_submitted, stripe_pix_enabled, created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.StripeAccountID, &user.StripeCustomerID,
		&user.StripeChargesEnabled, &user.StripeDetailsSubmitted, &user.StripePixEnabled, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DatabaseClient) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := scanUser(d.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// SetStripeAccount links a freshly created connected account to the user and
// resets the cached status flags. It reports false when the user already had
// an account on file, in which case nothing is written.
func (d *DatabaseClient) SetStripeAccount(ctx context.Context, userID uuid.UUID, accountID string) (bool, error) {
	res, err := d.db.ExecContext(ctx, `
		UPDATE users
		SET stripe_account_id = $1, stripe_charges_enabled = false, stripe_details_submitted = false
		WHERE id = $2 AND stripe_account_id IS NULL
	`, accountID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to set stripe account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to set stripe account: %w", err)
	}
	return n == 1, nil
}

func (d *DatabaseClient) SetStripeCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE users
		SET stripe_customer_id = $1
		WHERE id = $2
	`, customerID, userID)
	if err != nil {
		return fmt.Errorf("failed to set stripe customer: %w", err)
	}
	return nil
}

func (d *DatabaseClient) UpdateStripeAccountStatus(ctx context.Context, userID uuid.UUID, chargesEnabled, detailsSubmitted bool) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE users
		SET stripe_charges_enabled = $1, stripe_details_submitted = $2
		WHERE id = $3
	`, chargesEnabled, detailsSubmitted, userID)
	if err != nil {
		return fmt.Errorf("failed to update stripe account status: %w", err)
	}
	return nil
}

// SyncStripeAccountStatus overwrites the cached flags of the user owning
// accountID and returns the cached pix flag.
func (d *DatabaseClient) SyncStripeAccountStatus(ctx context.Context, accountID string, chargesEnabled, detailsSubmitted bool) (bool, error) {
	var pixEnabled bool
	err := d.db.QueryRowContext(ctx, `
		UPDATE users
		SET stripe_charges_enabled = $1, stripe_details_submitted = $2
		WHERE stripe_account_id = $3
		RETURNING stripe_pix_enabled
	`, chargesEnabled, detailsSubmitted, accountID).Scan(&pixEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("account %s: %w", accountID, models.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to sync stripe account status: %w", err)
	}
	return pixEnabled, nil
}

func (d *DatabaseClient) MarkPixEnabled(ctx context.Context, accountID string) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE users
		SET stripe_pix_enabled = true
		WHERE stripe_account_id = $1
	`, accountID)
	if err != nil {
		return fmt.Errorf("failed to mark pix enabled: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetPhoto(ctx context.Context, photoID uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	err := d.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, COALESCE(description, ''), tags, price,
		       original_path, COALESCE(preview_path, ''), status, visibility, created_at
		FROM photos
		WHERE id = $1
	`, photoID).Scan(
		&photo.ID, &photo.UserID, &photo.Title, &photo.Description, pq.Array(&photo.Tags), &photo.Price,
		&photo.OriginalPath, &photo.PreviewPath, &photo.Status, &photo.Visibility, &photo.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("photo %s: %w", photoID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

func (d *DatabaseClient) UpdatePhotoPreviewPath(ctx context.Context, photoID uuid.UUID, previewPath string) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE photos
		SET preview_path = $1
		WHERE id = $2
	`, previewPath, photoID)
	if err != nil {
		return fmt.Errorf("failed to update preview path: %w", err)
	}
	return nil
}

// CreatePurchase inserts the purchase unless one already exists for the same
// payment reference. It reports whether a row was inserted.
func (d *DatabaseClient) CreatePurchase(ctx context.Context, purchase *models.Purchase) (bool, error) {
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO purchases (photo_id, buyer_id, seller_id, payment_reference, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (payment_reference) DO NOTHING
		RETURNING id, created_at
	`, purchase.PhotoID, purchase.BuyerID, purchase.SellerID, purchase.PaymentReference,
		purchase.Amount, purchase.Status).Scan(&purchase.ID, &purchase.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return false, fmt.Errorf("%w: %s", models.ErrUnknownReference, pqErr.Constraint)
	}
	if err != nil {
		return false, fmt.Errorf("failed to create purchase: %w", err)
	}
	return true, nil
}

func (d *DatabaseClient) HasApprovedPurchase(ctx context.Context, buyerID, photoID uuid.UUID) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM purchases
			WHERE buyer_id = $1 AND photo_id = $2 AND status = $3
		)
	`, buyerID, photoID, models.PurchaseApproved).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return exists, nil
}

func (d *DatabaseClient) ListPurchasesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]models.Purchase, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, photo_id, buyer_id, seller_id, payment_reference, amount, status, created_at
		FROM purchases
		WHERE buyer_id = $1
		ORDER BY created_at DESC
	`, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		err := rows.Scan(
			&p.ID, &p.PhotoID, &p.BuyerID, &p.SellerID,
			&p.PaymentReference, &p.Amount, &p.Status, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return purchases, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
