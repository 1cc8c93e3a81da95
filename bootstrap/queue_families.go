package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// QueueFamilyIndices holds the queue families a device needs. A nil field
// means no family with that role has been found.
type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i *QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// UniqueFamilies returns the distinct family indices in role order,
// graphics first. Only meaningful on complete indices.
func (i *QueueFamilyIndices) UniqueFamilies() []int {
	uniqueQueueFamilies := []int{*i.GraphicsFamily}
	if *i.PresentFamily != *i.GraphicsFamily {
		uniqueQueueFamilies = append(uniqueQueueFamilies, *i.PresentFamily)
	}
	return uniqueQueueFamilies
}

// FindQueueFamilies records the first graphics-capable family and the first
// family able to present to surface, stopping once both are known.
func FindQueueFamilies(device PhysicalDevice, surface Surface) (QueueFamilyIndices, error) {
	indices := QueueFamilyIndices{}

	for queueFamilyIdx, flags := range device.QueueFamilies() {
		if indices.GraphicsFamily == nil && flags&core1_0.QueueGraphics != 0 {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamilyIdx
		}

		if indices.PresentFamily == nil {
			supported, err := surface.SupportsPresentation(device, queueFamilyIdx)
			if err != nil {
				return indices, errors.Wrapf(err, "query presentation support of queue family %d", queueFamilyIdx)
			}

			if supported {
				indices.PresentFamily = new(int)
				*indices.PresentFamily = queueFamilyIdx
			}
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}
