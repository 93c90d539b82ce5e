package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"serenia/config"
	"serenia/database"
	"serenia/models"
	"serenia/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds a handful of associates with a week of open slots each, for local
// manual testing against a running instance.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database(database.DatabaseName)
	associatesColl := db.Collection(database.AssociatesCollection)

	// Clear existing associates.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := associatesColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear associates collection: %v", err)
	}

	seedPlan := []struct {
		Name        string
		Designation string
	}{
		{"Dr. Vera Lind", models.DesignationPsychologist},
		{"Dr. Tomas Engel", models.DesignationPsychologist},
		{"Mara Oduya", models.DesignationCosmetologist},
		{"Ines Castellano", models.DesignationCosmetologist},
	}

	// Open 09:00-16:30 on the half-hour grid for the next 7 days.
	var workingTimes []string
	for minutes := 9 * 60; minutes <= 16*60+30; minutes += models.SlotStepMinutes {
		workingTimes = append(workingTimes, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}

	today := time.Now()
	var docs []interface{}
	for _, plan := range seedPlan {
		assoc := models.Associate{
			ID:          uuid.New().String(),
			Name:        plan.Name,
			Designation: plan.Designation,
			CreatedAt:   today,
			UpdatedAt:   today,
		}
		for i := 0; i < 7; i++ {
			date := today.AddDate(0, 0, i).Format("2006-01-02")
			day := assoc.EnsureDay(date)
			for _, t := range workingTimes {
				day.Slots = append(day.Slots, models.Slot{
					Time:        t,
					IsAvailable: true,
					Duration:    models.SlotStepMinutes,
				})
			}
		}
		docs = append(docs, assoc)
	}

	res, err := associatesColl.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert seed associates: %v", err)
	}
	fmt.Printf("Seeded %d associates with a week of availability each.\n", len(res.InsertedIDs))

	// Tokens for poking the protected endpoints by hand.
	adminToken, err := utils.GenerateToken("seed-admin", models.RoleAdmin, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to generate admin token: %v", err)
	}
	subjectToken, err := utils.GenerateToken("seed-subject", models.RoleSubject, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to generate subject token: %v", err)
	}
	fmt.Printf("Admin token:   %s\n", adminToken)
	fmt.Printf("Subject token: %s\n", subjectToken)
}
