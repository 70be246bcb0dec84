package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/m04kA/SRF-AvailabilityService/internal/config"
	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	bondsportsClient "github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
	getAvailabilityUC "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/SRF-AvailabilityService/pkg/logger"
)

// fieldcheck - консольная проверка свободного времени на полях.
// Учетные данные платформы берутся из окружения (BONDSPORTS_TOKEN или
// BONDSPORTS_EMAIL/BONDSPORTS_PASSWORD), опционально через .env

const defaultTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load()

	location := flag.String("location", "all", "ключ площадки (wall-street, crown-heights) или all")
	dateStr := flag.String("date", "", "дата YYYY-MM-DD (по умолчанию сегодня)")
	field := flag.String("field", "", "фильтр по имени поля, частичное совпадение")
	minDuration := flag.Int("min-duration", domain.DefaultMinBlockMinutes, "минимальная длительность блока в минутах")
	verbose := flag.Bool("v", false, "подробный лог в stderr")
	flag.Parse()

	date := time.Now()
	if *dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "некорректная дата %q, ожидается YYYY-MM-DD\n", *dateStr)
			os.Exit(2)
		}
		date = parsed
	}

	logLevel := "error"
	if *verbose {
		logLevel = "debug"
	}
	log, err := logger.New("", logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "не удалось инициализировать логгер: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	client := bondsportsClient.NewClient(bondsportsClient.DefaultBaseURL, defaultTimeout, log, nil)

	credsSource, err := credentialsFromEnv(client)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	useCase := getAvailabilityUC.NewUseCase(client, credsSource, nil, nil, log)

	keys := domain.FacilityKeys()
	if *location != "all" {
		if _, ok := domain.FacilityByKey(*location); !ok {
			fmt.Fprintf(os.Stderr, "неизвестная площадка %q, доступны: %v или all\n", *location, keys)
			os.Exit(2)
		}
		keys = []string{*location}
	}

	ctx := context.Background()
	failed := false

	for _, key := range keys {
		resp, err := useCase.Execute(ctx, &getAvailabilityUC.Request{
			FacilityKey:        key,
			Date:               date,
			FieldFilter:        *field,
			MinDurationMinutes: minDuration,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", key, err)
			failed = true
			continue
		}
		printAvailability(resp)
	}

	if failed {
		os.Exit(1)
	}
}

// credentialsFromEnv выбирает источник учетных данных по переменным окружения
func credentialsFromEnv(client *bondsportsClient.Client) (getAvailabilityUC.CredentialsSource, error) {
	if token := os.Getenv(config.EnvToken); token != "" {
		return bondsportsClient.NewStaticCredentialsSource(token), nil
	}

	email := os.Getenv(config.EnvEmail)
	password := os.Getenv(config.EnvPassword)
	if email != "" && password != "" {
		return bondsportsClient.NewLoginCredentialsSource(client, email, password), nil
	}

	return nil, fmt.Errorf("учетные данные не заданы: нужен %s или пара %s/%s",
		config.EnvToken, config.EnvEmail, config.EnvPassword)
}

func printAvailability(resp *getAvailabilityUC.Response) {
	fmt.Printf("\n%s - %s\n", resp.FacilityName, resp.Date.Format(domain.DateFormat))
	fmt.Printf("бронирование: %s\n", resp.BookingURL)

	for _, res := range resp.Resources {
		fmt.Printf("\n  %s", res.ResourceName)
		if res.WindowOpen != "" {
			fmt.Printf(" (%s - %s)", clock12(res.WindowOpen), clock12(res.WindowClose))
		}
		fmt.Println()

		if res.WindowOpen == "" {
			fmt.Println("    часы работы на этот день неизвестны")
			continue
		}
		if len(res.Blocks) == 0 {
			fmt.Println("    свободных блоков нет")
			continue
		}

		for _, b := range res.Blocks {
			fmt.Printf("    %s - %s  (%s)\n", clock12(b.Start), clock12(b.End), formatDuration(b.DurationMinutes))
		}
	}
	fmt.Println()
}

// clock12 переводит "HH:MM" в 12-часовой формат ("18:30" -> "6:30 PM")
func clock12(hhmm string) string {
	t, err := domain.ParseTimeOfDay(hhmm)
	if err != nil {
		return hhmm
	}

	minutes := t.Minutes() % domain.MinutesPerDay
	hour := minutes / 60
	minute := minutes % 60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, suffix)
}

// formatDuration печатает длительность в виде "2h 30m"
func formatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
