package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/infrastructure/postgres"
	"github.com/bvanacker/bestelportaal-api/pkg/config"
	"github.com/bvanacker/bestelportaal-api/pkg/logger"
	"github.com/bvanacker/bestelportaal-api/pkg/password"
	"github.com/bvanacker/bestelportaal-api/pkg/random"
)

const (
	productCount = 200
	orderCount   = 600
	usersPerRole = 3
	seedPassword = "wachtwoord"
)

type companyFixture struct {
	name   string
	email  string
	sector string
	url    string
}

var companies = []companyFixture{
	{"TechHub Belgium", "contact@techhub.be", "IT", "https://www.techhub.be"},
	{"HealthCare Plus", "info@healthcareplus.be", "HEALTH", "https://www.healthcareplus.be"},
	{"EcoEnergy Solutions", "support@ecoenergy.be", "ENERGY", "https://www.ecoenergy.be"},
	{"FinTrust Advisors", "inquiries@fintrust.be", "FINANCE", "https://www.fintrust.be"},
	{"EduBright", "hello@edubright.be", "EDUCATION", "https://www.edubright.be"},
	{"AutoDrive Belgium", "service@autodrive.be", "AUTOMOTIVE", "https://www.autodrive.be"},
	{"Transpo Logistics", "team@transpologistics.be", "TRANSPORTATION", "https://www.transpologistics.be"},
	{"Foodies Delight", "contact@foodiesdelight.be", "FOOD", "https://www.foodiesdelight.be"},
	{"MediNet Belgium", "info@medinet.be", "HEALTH", "https://www.medinet.be"},
	{"SmartSocial", "support@smartsocial.be", "SOCIALMEDIA", "https://www.smartsocial.be"},
	{"FutureTech", "info@futuretech.be", "IT", "https://www.futuretech.be"},
	{"SafeDrive", "contact@safedrive.be", "AUTOMOTIVE", "https://www.safedrive.be"},
	{"Finance360", "info@finance360.be", "FINANCE", "https://www.finance360.be"},
	{"HealthyLife", "support@healthylife.be", "HEALTH", "https://www.healthylife.be"},
	{"TransExpress", "contact@transexpress.be", "TRANSPORTATION", "https://www.transexpress.be"},
	{"EduSmart", "hello@edusmart.be", "EDUCATION", "https://www.edusmart.be"},
	{"GreenEnergy Belgium", "support@greenenergy.be", "ENERGY", "https://www.greenenergy.be"},
	{"GourmetBites", "info@gourmetbites.be", "FOOD", "https://www.gourmetbites.be"},
	{"InnoSocial", "contact@innosocial.be", "SOCIALMEDIA", "https://www.innosocial.be"},
	{"BrightIT Solutions", "support@brightit.be", "IT", "https://www.brightit.be"},
}

var streets = []string{
	"Kerkstraat", "Dorpsstraat", "Lindelaan", "Beukenlaan", "Eikenstraat",
	"Kastanjedreef", "Meersstraat", "Zandstraat", "Stationsstraat", "Rijksweg",
}

var cities = []struct {
	name       string
	postalCode int
}{
	{"Antwerpen", 2000}, {"Gent", 9000}, {"Brugge", 8000}, {"Leuven", 3000},
	{"Mechelen", 2800}, {"Hasselt", 3500}, {"Oostende", 8400}, {"Kortrijk", 8500},
	{"Sint-Niklaas", 9100}, {"Genk", 3600},
}

var productNames = []string{
	"StellarGrip Sports Shoes", "TechSavvy Laptop Bag", "EcoFusion Bamboo Toothbrush",
	"ZenGarden Meditation Pillow", "AquaSprout Plant Watering System", "NovaGlow LED Desk Lamp",
	"SolarBloom Garden Lights", "TurboCharge Portable Power Bank", "PureElixir Facial Serum",
	"GalaxySpin Fidget Spinner", "BioFresh Fruit Infuser Bottle", "SwiftGear Running Socks",
	"LunaFlare Camping Lantern", "SnapShot Instant Camera", "SmartSweep Robotic Vacuum",
	"AeroDrift Drone with HD Camera", "ChillWave Beverage Cooler", "Solaris Solar Panels",
	"CloudMist Essential Oil Diffuser", "HydroZen Yoga Mat", "TerraTrek Hiking Backpack",
	"EchoPulse Bluetooth Speaker", "BioGlow Plant Grow Light", "LunaTide Surfboard Wax",
	"ArcticFrost Ice Scraper", "SparkRise Fire Starter Kit", "BioFuel Eco-friendly Stove",
	"SwiftShift Gearbox Oil", "TerraNova Organic Fertilizer", "SkyRider Kite",
}

// seeder loads a deterministic demo dataset. Run twice it is a no-op:
// an already-populated database is left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply schema")
	}

	var existing int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM companies`).Scan(&existing); err != nil {
		log.Fatal().Err(err).Msg("inspect database")
	}
	if existing > 0 {
		log.Info().Int("companies", existing).Msg("database already seeded, nothing to do")
		return
	}

	s := &seeder{ctx: ctx, pool: pool, uuids: random.NewUUIDGenerator(0)}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"companies", s.seedCompanies},
		{"users", s.seedUsers},
		{"products", s.seedProducts},
		{"orders", s.seedOrders},
		{"payments", s.seedPayments},
		{"notifications", s.seedNotifications},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			log.Fatal().Err(err).Str("step", step.name).Msg("seeding failed")
		}
		log.Info().Str("step", step.name).Msg("seeded")
	}
}

type seededOrder struct {
	id       int64
	uuid     string
	amount   decimal.Decimal
	date     time.Time
	buyer    int64
	supplier int64
	inStock  bool
}

type seeder struct {
	ctx   context.Context
	pool  *pgxpool.Pool
	uuids *random.UUIDGenerator

	companyIDs []int64
	buyers     map[int64][]int64 // company id -> buyer user ids
	suppliers  map[int64][]int64
	prices     []decimal.Decimal
	stocks     []int64
	orders     []seededOrder
}

func mustGenerator(opts random.Options) *random.NumberGenerator {
	ng, err := random.NewNumberGenerator(opts)
	if err != nil {
		panic(err)
	}
	return ng
}

// digits renders n digits from a fresh generator seeded per entity, so a
// fixture's phone and VAT numbers never change between runs.
func digits(seed, n int64) string {
	ng := mustGenerator(random.Options{Seed: seed, A: 1, C: 1, Min: 0, Max: 9})
	var b strings.Builder
	for i := int64(0); i < n; i++ {
		fmt.Fprintf(&b, "%d", ng.NextInt())
	}
	return b.String()
}

func pick[T any](list []T, seed int64) T {
	ng := mustGenerator(random.Options{Seed: seed, A: 1, C: 1, Min: 0, Max: int64(len(list) - 1)})
	return list[ng.NextInt()]
}

func (s *seeder) seedCompanies() error {
	houseNG := mustGenerator(random.Options{Seed: 5, A: 1, C: 1, Min: 1, Max: 100})
	boxes := []string{"A", "B", "20", ""}
	for i, c := range companies {
		city := pick(cities, int64(i*2))
		var id int64
		err := s.pool.QueryRow(s.ctx, `
			INSERT INTO companies (uuid, name, sector, email, phone, website, vat_number, active,
				street, number, box, postal_code, city)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8, $9, $10, $11, $12)
			RETURNING id`,
			s.uuids.Next().String(), c.name, c.sector, c.email,
			"+324"+digits(int64(i*10), 8), c.url, "BE0"+digits(int64(i*4), 9),
			pick(streets, int64(i*3)), houseNG.NextInt(), boxes[i%len(boxes)],
			city.postalCode, city.name,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert company %q: %w", c.name, err)
		}
		s.companyIDs = append(s.companyIDs, id)
	}
	return nil
}

func snake(name string) string {
	return strings.Join(strings.Split(strings.ToLower(name), " "), "_")
}

func (s *seeder) insertUser(email, username, role string) (int64, error) {
	// The username doubles as the salt so reseeded databases keep stable
	// password hashes.
	var id int64
	err := s.pool.QueryRow(s.ctx, `
		INSERT INTO users (username, email, role, salt, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		username, email, role, username, password.Hash(seedPassword, username),
	).Scan(&id)
	return id, err
}

func (s *seeder) seedUsers() error {
	if _, err := s.insertUser("test@administrator.com", "administrator", entity.RoleAdmin); err != nil {
		return err
	}

	s.buyers = make(map[int64][]int64)
	s.suppliers = make(map[int64][]int64)
	for i, companyID := range s.companyIDs {
		slug := snake(companies[i].name)
		for n := 1; n <= usersPerRole; n++ {
			buyerID, err := s.insertUser(
				fmt.Sprintf("klant%d@%s.com", n, slug),
				fmt.Sprintf("klant%d_%s", n, slug),
				entity.RoleBuyer,
			)
			if err != nil {
				return err
			}
			if _, err := s.pool.Exec(s.ctx,
				`INSERT INTO buyer_memberships (user_id, company_id) VALUES ($1, $2)`,
				buyerID, companyID); err != nil {
				return err
			}
			s.buyers[companyID] = append(s.buyers[companyID], buyerID)

			supplierID, err := s.insertUser(
				fmt.Sprintf("leverancier%d@%s.com", n, slug),
				fmt.Sprintf("leverancier%d_%s", n, slug),
				entity.RoleSupplier,
			)
			if err != nil {
				return err
			}
			if _, err := s.pool.Exec(s.ctx,
				`INSERT INTO supplier_memberships (user_id, company_id) VALUES ($1, $2)`,
				supplierID, companyID); err != nil {
				return err
			}
			s.suppliers[companyID] = append(s.suppliers[companyID], supplierID)
		}
	}
	return nil
}

func (s *seeder) seedProducts() error {
	ng := mustGenerator(random.Options{Seed: 0, A: 1, C: 1, Min: 0, Max: 999})
	for i := 1; i <= productCount; i++ {
		stock := ng.IntBetween(0, 1000)
		price := decimal.NewFromInt(ng.IntBetween(0, 1000)).
			Add(decimal.NewFromInt(ng.IntBetween(0, 100)).Div(decimal.NewFromInt(100)))
		name := productNames[ng.IntBetween(0, int64(len(productNames)))]
		if _, err := s.pool.Exec(s.ctx,
			`INSERT INTO products (name, stock, unit_price) VALUES ($1, $2, $3)`,
			name, stock, price); err != nil {
			return fmt.Errorf("insert product %d: %w", i, err)
		}
		s.prices = append(s.prices, price)
		s.stocks = append(s.stocks, stock)
	}
	return nil
}

func (s *seeder) seedOrders() error {
	statusNG := mustGenerator(random.Options{Seed: 50, A: 1, C: 1, Min: 0, Max: 9})
	supplierIdx, buyerIdx := 0, 1
	productIdx := 0

	for i := 1; i <= orderCount; i++ {
		date := time.Date(
			2020+(i/200)%10, time.Month((i%12)+1), (i%28)+1,
			i%24, i%60, 0, 0, time.UTC,
		)

		lineCount := i % 10
		type line struct {
			product  int
			quantity int
		}
		var lines []line
		amount := decimal.Zero
		inStock := true
		for l := 0; l < lineCount; l++ {
			p := (productIdx + l) % productCount
			qty := ((l + 1) * i) % 20
			lines = append(lines, line{product: p, quantity: qty})
			amount = amount.Add(s.prices[p].Mul(decimal.NewFromInt(int64(qty))))
			if int64(qty) > s.stocks[p] {
				inStock = false
			}
		}
		productIdx = (productIdx + i) % productCount

		buyer := s.companyIDs[buyerIdx]
		supplier := s.companyIDs[supplierIdx]

		var orderID int64
		err := s.pool.QueryRow(s.ctx, `
			INSERT INTO orders (uuid, amount, order_date, order_status, payment_status,
				street, number, postal_code, city, buyer_id, supplier_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
			s.uuids.Next().String(), amount, date,
			statusNG.IntBetween(0, 6), statusNG.IntBetween(0, 3),
			pick(streets, int64(i)), int(statusNG.IntBetween(1, 100)),
			pick(cities, int64(i)).postalCode, pick(cities, int64(i)).name,
			buyer, supplier,
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order %d: %w", i, err)
		}
		for _, l := range lines {
			if _, err := s.pool.Exec(s.ctx,
				`INSERT INTO order_lines (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
				orderID, int64(l.product+1), l.quantity); err != nil {
				return err
			}
		}
		s.orders = append(s.orders, seededOrder{
			id: orderID, amount: amount, date: date,
			buyer: buyer, supplier: supplier, inStock: inStock && lineCount > 0,
		})

		supplierIdx = (supplierIdx + 1) % len(s.companyIDs)
		buyerIdx = (buyerIdx + 2) % len(s.companyIDs)
		if supplierIdx == buyerIdx {
			buyerIdx = (buyerIdx + 1) % len(s.companyIDs)
		}
	}
	return nil
}

// seedPayments settles every other order in full, two days after it was
// placed.
func (s *seeder) seedPayments() error {
	for i, o := range s.orders {
		if i%2 != 0 {
			continue
		}
		if _, err := s.pool.Exec(s.ctx, `
			INSERT INTO payments (payment_date, amount_paid, approved, processed, amount_owed, buyer_id, order_id)
			VALUES ($1, $2, TRUE, TRUE, $3, $4, $5)`,
			o.date.AddDate(0, 0, 2), o.amount, o.amount, o.buyer, o.id); err != nil {
			return fmt.Errorf("insert payment for order %d: %w", o.id, err)
		}
	}
	return nil
}

func (s *seeder) seedNotifications() error {
	statuses := []string{entity.StatusNew, entity.StatusUnread, entity.StatusRead}
	statusNG := mustGenerator(random.Options{Seed: 25, A: 1, C: 1, Min: 0, Max: 2})

	insert := func(kind string, date time.Time, text string, userID, orderID int64) error {
		_, err := s.pool.Exec(s.ctx, `
			INSERT INTO notifications (kind, date, text, status, user_id, order_id)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			kind, date, text, statuses[statusNG.NextInt()], userID, orderID)
		return err
	}

	for i, o := range s.orders {
		paid := i%2 == 0
		if !paid {
			// Unsettled orders get a payment reminder for every buyer account.
			text := fmt.Sprintf("Gelieve het bedrag van %s euro te betalen voor bestelling %d", o.amount.StringFixed(2), o.id)
			for _, userID := range s.buyers[o.buyer] {
				if err := insert(entity.KindPaymentReminder, o.date.AddDate(0, 0, 10), text, userID, o.id); err != nil {
					return err
				}
			}
			continue
		}
		text := fmt.Sprintf("Volledige betaling van %s euro werd ontvangen voor bestelling %d", o.amount.StringFixed(2), o.id)
		for _, userID := range s.suppliers[o.supplier] {
			if err := insert(entity.KindPaymentReceived, o.date.AddDate(0, 0, 2), text, userID, o.id); err != nil {
				return err
			}
		}
		if o.inStock {
			text := fmt.Sprintf("Alle producten zijn voorradig voor bestelling %d", o.id)
			for _, userID := range s.suppliers[o.supplier] {
				if err := insert(entity.KindStockAvailable, o.date.AddDate(0, 0, 1), text, userID, o.id); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
