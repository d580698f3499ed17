package model

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

type RecordRepository struct {
	DB *gorm.DB
}

// Create persists a new record, letting the database assign its identifier.
// Intervals whose wake time does not come after their sleep time are refused
// with ErrInvalidInterval before anything is written.
func (r *RecordRepository) Create(record *SleepRecord) error {
	if !record.WakeTime.After(record.SleepTime) {
		return ErrInvalidInterval
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			log.Printf("error creating sleep record: %s\n", err)
			return err
		}
		return nil
	})
}

// FindByDay returns the records whose sleep time falls on the given calendar
// day, most recent first.
func (r *RecordRepository) FindByDay(day time.Time) ([]SleepRecord, error) {
	var records []SleepRecord

	start, end := dayWindow(day)
	result := r.DB.Where("sleep_time >= ? AND sleep_time <= ?", start, end).Order("sleep_time DESC").Find(&records)
	if result.Error != nil {
		log.Printf("error listing sleep records: %s\n", result.Error)
		return nil, result.Error
	}

	return records, nil
}

func (r *RecordRepository) FindByID(id uint) (*SleepRecord, error) {
	var record SleepRecord

	result := r.DB.First(&record, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if result.Error != nil {
		log.Printf("error fetching sleep record %d: %s\n", id, result.Error)
		return nil, result.Error
	}

	return &record, nil
}

// Update overwrites the sleep time, wake time and notes of an existing
// record. It fails with ErrNotFound if the record is gone and with
// ErrInvalidInterval on a bad ordering, leaving the stored row untouched
// either way.
func (r *RecordRepository) Update(record *SleepRecord) error {
	if !record.WakeTime.After(record.SleepTime) {
		return ErrInvalidInterval
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing SleepRecord
		if err := tx.First(&existing, record.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		existing.SleepTime = record.SleepTime
		existing.WakeTime = record.WakeTime
		existing.Notes = record.Notes

		if err := tx.Save(&existing).Error; err != nil {
			log.Printf("error updating sleep record %d: %s\n", record.ID, err)
			return err
		}
		return nil
	})
}

func (r *RecordRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&SleepRecord{}, id)
		if result.Error != nil {
			log.Printf("error deleting sleep record %d: %s\n", id, result.Error)
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CountByDay returns how many records have their sleep time on the given
// calendar day, used to number naps sequentially.
func (r *RecordRepository) CountByDay(day time.Time) (int64, error) {
	var count int64

	start, end := dayWindow(day)
	result := r.DB.Model(&SleepRecord{}).Where("sleep_time >= ? AND sleep_time <= ?", start, end).Count(&count)
	if result.Error != nil {
		log.Printf("error counting sleep records: %s\n", result.Error)
		return 0, result.Error
	}

	return count, nil
}

// dayWindow returns the inclusive calendar-day range
// [day 00:00:00, day 23:59:59.999999] sleep times are matched against.
func dayWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Microsecond)
	return start, end
}
